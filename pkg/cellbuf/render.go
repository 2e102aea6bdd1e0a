package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StyleFunc resolves a StyleKey to the lipgloss style it stands for. ok is
// false for keys with no style; their cells are written unstyled.
type StyleFunc func(k StyleKey) (st lipgloss.Style, ok bool)

// Render converts the buffer into styled text, rows joined with "\n".
// Each run of cells sharing a StyleKey costs one Style.Render call, so a
// full redraw per pointer move stays cheap. An empty buffer renders "".
func (b *Buffer) Render(style StyleFunc) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	var out strings.Builder
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < len(row); {
			key := row[x].Style
			run = run[:0]
			for ; x < len(row) && row[x].Style == key; x++ {
				run = append(run, row[x].Ch)
			}
			if st, ok := style(key); ok {
				out.WriteString(st.Render(string(run)))
			} else {
				out.WriteString(string(run))
			}
		}
	}
	return out.String()
}
