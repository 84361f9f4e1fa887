package renumber

import (
	"github.com/tsawler/renumber/format"
	"github.com/tsawler/renumber/htmldoc"
)

// Options holds configuration for reading input.
type Options struct {
	// Forced input format; Unknown means detect
	format format.Format

	// OCR language(s), "+" separated; empty keeps Tesseract's default
	language string

	// How much page chrome to drop from HTML input
	navigation htmldoc.NavigationExclusionMode
}

// defaultOptions returns the default options.
func defaultOptions() Options {
	return Options{
		format:     format.Unknown,
		language:   "",
		navigation: htmldoc.NavigationExclusionStandard,
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{
		format:     o.format,
		language:   o.language,
		navigation: o.navigation,
	}
}
