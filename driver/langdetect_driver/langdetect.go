// Package langdetect_driver fills missing article languages with lingua.
package langdetect_driver

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// minDetectableLength avoids guessing from a handful of characters.
const minDetectableLength = 20

// minConfidence is the lowest detector confidence accepted.
const minConfidence = 0.5

var newsLanguages = []lingua.Language{
	lingua.English, lingua.German, lingua.French, lingua.Spanish,
	lingua.Italian, lingua.Portuguese, lingua.Dutch, lingua.Japanese,
	lingua.Chinese, lingua.Korean, lingua.Russian, lingua.Arabic,
}

type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(newsLanguages...).
			Build(),
	}
}

// Detect returns the lowercase ISO 639-1 code of text.
func (d *Detector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if len(text) < minDetectableLength {
		return "", false
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	if d.detector.ComputeLanguageConfidence(text, lang) < minConfidence {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
