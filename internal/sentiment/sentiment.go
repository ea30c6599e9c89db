package sentiment

import (
	"strings"
	"unicode"
)

// Result is the sentiment of a single piece of text. Positive and Negative
// list the trigger words in detection order, one entry per occurrence.
type Result struct {
	Score       int
	Comparative float64
	Positive    []string
	Negative    []string
}

// Analyzer scores text against a fixed valence lexicon. Each call is
// independent; the analyzer carries no state across texts.
type Analyzer struct {
	lexicon map[string]int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// Analyze tokenizes text and sums the valence of every known token.
// Comparative is the score divided by the token count of the text.
func (a *Analyzer) Analyze(text string) Result {
	tokens := tokenize(text)

	var result Result
	for _, token := range tokens {
		weight, ok := a.lexicon[token]
		if !ok {
			continue
		}
		result.Score += weight
		if weight > 0 {
			result.Positive = append(result.Positive, token)
		} else {
			result.Negative = append(result.Negative, token)
		}
	}

	if len(tokens) > 0 {
		result.Comparative = float64(result.Score) / float64(len(tokens))
	}

	return result
}

// tokenize lowercases the text and splits it on anything that is not a
// letter, digit or apostrophe.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			return r
		}
		return ' '
	}, lower)
	return strings.Fields(cleaned)
}
