// Package linguadetect guesses the source language of a text, restricted to
// the languages the translation layer actually supports.
package linguadetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

type Detector struct {
	det lingua.LanguageDetector
}

func New() *Detector {
	langs := []lingua.Language{
		lingua.English,
		lingua.German,
		lingua.Dutch,
		lingua.French,
		lingua.Spanish,
	}
	return &Detector{
		det: lingua.NewLanguageDetectorBuilder().FromLanguages(langs...).Build(),
	}
}

// Detect returns the ISO 639-1 code of the text's language, "en" when
// detection is inconclusive. Never fails.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return "en"
	}
	lang, ok := d.det.DetectLanguageOf(text)
	if !ok {
		return "en"
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
