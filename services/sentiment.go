package services

import (
	"strings"
	"unicode"
)

// sentimentLexicon maps words to integer valences, AFINN style. The score of
// a text is the plain sum over its tokens; unknown words contribute nothing.
var sentimentLexicon = map[string]int{
	// negative
	"abysmal":        -4,
	"angry":          -3,
	"annoyed":        -2,
	"annoying":       -2,
	"appalling":      -3,
	"awful":          -3,
	"bad":            -3,
	"broken":         -1,
	"cheated":        -3,
	"complaint":      -1,
	"damaged":        -2,
	"defective":      -2,
	"disappointed":   -2,
	"disappointing":  -2,
	"disgusted":      -3,
	"disgusting":     -3,
	"dissatisfied":   -2,
	"dreadful":       -3,
	"faulty":         -2,
	"frustrated":     -2,
	"frustrating":    -2,
	"hate":           -3,
	"hated":          -3,
	"horrible":       -3,
	"inadequate":     -2,
	"incompetent":    -2,
	"late":           -1,
	"lousy":          -2,
	"mediocre":       -1,
	"miserable":      -3,
	"misleading":     -2,
	"pathetic":       -2,
	"poor":           -2,
	"refuse":         -2,
	"refused":        -2,
	"ridiculous":     -3,
	"rude":           -2,
	"scam":           -2,
	"shoddy":         -2,
	"terrible":       -3,
	"unacceptable":   -2,
	"unhappy":        -2,
	"unhelpful":      -2,
	"unreliable":     -2,
	"unusable":       -2,
	"useless":        -2,
	"waste":          -1,
	"worst":          -3,
	"worthless":      -2,
	"wrong":          -2,

	// positive
	"amazing":     4,
	"awesome":     4,
	"best":        3,
	"brilliant":   4,
	"delighted":   3,
	"excellent":   3,
	"fantastic":   4,
	"flawless":    3,
	"good":        3,
	"great":       3,
	"happy":       3,
	"helpful":     2,
	"impressed":   3,
	"love":        3,
	"loved":       3,
	"nice":        3,
	"outstanding": 5,
	"perfect":     3,
	"pleased":     3,
	"satisfied":   2,
	"superb":      5,
	"thank":       2,
	"thanks":      2,
	"wonderful":   4,
}

// ScoreSentiment maps free text to its numeric polarity. Deterministic:
// the same text always yields the same score.
func ScoreSentiment(text string) int {
	score := 0
	for _, token := range sentimentTokens(text) {
		score += sentimentLexicon[token]
	}
	return score
}

func sentimentTokens(text string) []string {
	lowered := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || r == '\'' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(lowered)
}
