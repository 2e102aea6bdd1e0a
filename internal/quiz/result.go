package quiz

import "fmt"

// band is an inclusive score range and the verdict for it.
type band struct {
	lo, hi int
	phrase string
}

// bands are checked in order; scores matching none get fallbackPhrase.
var bands = []band{
	{0, 0, "vro </3"},
	{1, 5, "what is buddy doing"},
	{6, 6, "I UNDERSTAND IT NOW"},
	{7, 7, "Almost there buddy!"},
	{10, 10, "this guys a genius or sum"},
}

const fallbackPhrase = "Good effort!"

// Phrase returns the verdict for a final score.
func Phrase(score int) string {
	for _, b := range bands {
		if score >= b.lo && score <= b.hi {
			return b.phrase
		}
	}
	return fallbackPhrase
}

// FinalScoreText is the score line of the result dialog.
func FinalScoreText(score int) string {
	return fmt.Sprintf("Final score: %d/%d", score, TotalQuestions)
}

// Present shows the result dialog for score.
func Present(d Display, score int) {
	d.ShowResult(Phrase(score), FinalScoreText(score))
}
