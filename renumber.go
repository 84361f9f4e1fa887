// Package renumber reformats a pasted, loosely numbered list into a
// cleanly renumbered one, separating out a leading explanatory line.
//
// Basic usage:
//
//	out, warnings, err := renumber.FromText(pasted).Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", renumber.FormatWarnings(warnings))
//	}
//
// Lists can also be read from HTML files and, when built with the "ocr"
// tag, from screenshots:
//
//	out, _, err := renumber.Open("steps.png").Language("eng+chi_sim").Text()
//
// For access to the classification itself, use Analyze, or the lower-level
// sequence and render packages.
package renumber

import (
	"io"

	"github.com/tsawler/renumber/sequence"
)

// Warning is a non-fatal problem found while classifying one input line.
type Warning = sequence.Warning

// FromText creates a Processor for an already pasted block of text.
//
// Example:
//
//	out, _, err := renumber.FromText("Steps:\n1. Open\n2. Fill\n3. Close").Text()
func FromText(block string) *Processor {
	return &Processor{
		text:    block,
		hasText: true,
		options: defaultOptions(),
	}
}

// FromReader creates a Processor that reads its input from r. The format
// is detected from the content unless set with Format.
func FromReader(r io.Reader) *Processor {
	return &Processor{
		reader:  r,
		options: defaultOptions(),
	}
}

// Open creates a Processor for a text, HTML or image file. The format is
// detected from the file extension, then from the content.
//
// Example:
//
//	out, warnings, err := renumber.Open("steps.html").Text()
func Open(filename string) *Processor {
	return &Processor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	lines := renumber.Must(renumber.Open("steps.txt").Lines())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Analyze() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	out := renumber.MustText(renumber.FromText(pasted).Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
