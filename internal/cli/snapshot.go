package cli

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/internal/render"
	"github.com/wesen/plotgrid/pkg/surface/imagesurface"
)

type snapshotOptions struct {
	out     string
	point   string
	preview bool
	size    int
}

// newSnapshotCmd renders the plane to a PNG file.
func newSnapshotCmd(root *rootOptions) *cobra.Command {
	opts := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the plane, optionally with one point, to a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "grid.png", "output PNG path")
	cmd.Flags().StringVar(&opts.point, "point", "", "point to draw, as x,y")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "draw the point as a translucent preview")
	cmd.Flags().IntVar(&opts.size, "size", 0, "image width and height in pixels (default from config)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, root *rootOptions, opts *snapshotOptions) error {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	if opts.size != 0 {
		cfg.Snapshot.Size = opts.size
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	r := cfg.Range()
	var mk render.Marker
	if opts.point != "" {
		p, err := parsePoint(opts.point)
		if err != nil {
			return err
		}
		if err := r.Check(p); err != nil {
			return fmt.Errorf("--point %s: %w", p, err)
		}
		mk = render.Marker{Kind: render.MarkerPlotted, At: p}
		if opts.preview {
			mk.Kind = render.MarkerPreview
		}
	}

	size := cfg.Snapshot.Size
	s := imagesurface.New(size, size)
	render.Scene(s, plane.NewMapper(r, float64(size)), render.DefaultTheme(), mk)

	if err := writePNG(opts.out, s); err != nil {
		return err
	}
	log.WithField("path", opts.out).WithField("size", size).Info("snapshot written")
	return nil
}

func writePNG(path string, s *imagesurface.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// parsePoint parses "x,y" into integer coordinates.
func parsePoint(s string) (plane.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return plane.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return plane.Point{}, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return plane.Point{}, fmt.Errorf("point %q: y: %w", s, err)
	}
	return plane.Pt(x, y), nil
}
