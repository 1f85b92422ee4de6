// Package lang resolves a document's working language to an ISO 639-3
// code, from a free-form hint when one exists and from statistical
// detection over sample text otherwise.
package lang

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

const (
	// DefaultLanguage is returned when neither the hint nor the sample
	// yields a usable code.
	DefaultLanguage = "eng"

	// DefaultSampleMin is the minimum whitespace-collapsed sample length
	// worth handing to the statistical detector.
	DefaultSampleMin = 30

	// DefaultDetectMin is the analysis floor below which a detector
	// verdict is not trusted.
	DefaultDetectMin = 20
)

// aliases maps common language names and ISO 639-1 codes to ISO 639-3.
var aliases = map[string]string{
	"en": "eng", "english": "eng",
	"hi": "hin", "hindi": "hin",
	"de": "deu", "german": "deu", "deutsch": "deu",
	"fr": "fra", "french": "fra",
	"es": "spa", "spanish": "spa",
	"pt": "por", "portuguese": "por",
	"it": "ita", "italian": "ita",
	"nl": "nld", "dutch": "nld",
	"ru": "rus", "russian": "rus",
	"zh": "chi", "chinese": "chi", "mandarin": "chi",
	"ja": "jpn", "japanese": "jpn",
	"ko": "kor", "korean": "kor",
	"ar": "ara", "arabic": "ara",
	"bn": "ben", "bengali": "ben",
	"ta": "tam", "tamil": "tam",
	"te": "tel", "telugu": "tel",
	"mr": "mar", "marathi": "mar",
	"gu": "guj", "gujarati": "guj",
	"pa": "pan", "punjabi": "pan",
	"ur": "urd", "urdu": "urd",
	"tr": "tur", "turkish": "tur",
	"pl": "pol", "polish": "pol",
	"uk": "ukr", "ukrainian": "ukr",
	"vi": "vie", "vietnamese": "vie",
	"th": "tha", "thai": "tha",
	"sv": "swe", "swedish": "swe",
	"no": "nor", "norwegian": "nor",
	"da": "dan", "danish": "dan",
	"fi": "fin", "finnish": "fin",
	"el": "ell", "greek": "ell",
	"he": "heb", "hebrew": "heb",
	"id": "ind", "indonesian": "ind",
	"cs": "ces", "czech": "ces",
	"ro": "ron", "romanian": "ron",
	"hu": "hun", "hungarian": "hun",
}

// Resolver maps hints and text samples to canonical language codes.
// The zero value uses the package defaults.
type Resolver struct {
	// Default is the fallback code; DefaultLanguage when empty.
	Default string

	// SampleMin overrides DefaultSampleMin when positive.
	SampleMin int

	// DetectMin overrides DefaultDetectMin when positive.
	DetectMin int
}

// Resolve returns the ISO 639-3 code for the given hint and sample.
//
// The hint takes precedence: it is lowercased, split on separators and
// whitespace, and each token is checked against the alias table; a token
// that is already a bare 3-letter alphabetic string passes through as-is.
// Without a resolvable hint, a sufficiently long sample is run through
// statistical detection, whose verdict goes back through the same
// validity check. Resolution is deterministic for a given input.
func (r Resolver) Resolve(hint, sample string) string {
	if code := ResolveHint(hint); code != "" {
		return code
	}
	if code := r.detect(sample); code != "" {
		return code
	}
	if r.Default != "" {
		return r.Default
	}
	return DefaultLanguage
}

// ResolveHint resolves a free-form hint alone, returning "" when no
// candidate token maps to a canonical code.
func ResolveHint(hint string) string {
	for _, token := range tokenize(hint) {
		if code, ok := aliases[token]; ok {
			return code
		}
		if len(token) == 3 {
			return token
		}
	}
	return ""
}

func (r Resolver) detect(sample string) string {
	sampleMin := r.SampleMin
	if sampleMin <= 0 {
		sampleMin = DefaultSampleMin
	}
	detectMin := r.DetectMin
	if detectMin <= 0 {
		detectMin = DefaultDetectMin
	}

	collapsed := strings.Join(strings.Fields(sample), " ")
	if len([]rune(collapsed)) < sampleMin || len([]rune(collapsed)) < detectMin {
		return ""
	}

	info := whatlanggo.Detect(collapsed)
	if !info.IsReliable() {
		return ""
	}
	return ResolveHint(whatlanggo.LangToString(info.Lang))
}

// tokenize lowercases the hint and splits it into letter-only candidate
// tokens, so "en-US" yields "en" then "us" and "Hindi, English" yields
// "hindi" then "english".
func tokenize(hint string) []string {
	return strings.FieldsFunc(strings.ToLower(hint), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
