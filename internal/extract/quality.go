package extract

import (
	"strings"
	"unicode"
)

// DefaultLetterThreshold is the minimum count of letter code points for
// extracted text to be considered meaningful. It is the single gate that
// decides whether the far more expensive OCR fallback runs, so it is
// tunable rather than inlined.
const DefaultLetterThreshold = 40

// Outcome is a stage's classified text: either sufficient to use as-is
// or insufficient, in which case the pipeline escalates to OCR.
type Outcome struct {
	Text       string
	Sufficient bool
}

// Classifier applies the meaningful-text gate.
type Classifier struct {
	// LetterThreshold overrides DefaultLetterThreshold when positive.
	LetterThreshold int
}

func (c Classifier) threshold() int {
	if c.LetterThreshold > 0 {
		return c.LetterThreshold
	}
	return DefaultLetterThreshold
}

// IsMeaningful reports whether text clears the letter-count gate.
// Blank input never does; otherwise the trimmed text must contain at
// least the threshold number of Unicode letter code points.
func (c Classifier) IsMeaningful(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	count := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			count++
			if count >= c.threshold() {
				return true
			}
		}
	}
	return false
}

// Classify wraps IsMeaningful into the tagged Outcome consumed by the
// pipeline's state machine.
func (c Classifier) Classify(text string) Outcome {
	return Outcome{Text: text, Sufficient: c.IsMeaningful(text)}
}
