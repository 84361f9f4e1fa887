package renumber

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/renumber/format"
	"github.com/tsawler/renumber/htmldoc"
	"github.com/tsawler/renumber/ocr"
	"github.com/tsawler/renumber/render"
	"github.com/tsawler/renumber/sequence"
	"github.com/tsawler/renumber/text"
)

// ErrEmptyInput is returned when the input contains no text at all.
var ErrEmptyInput = errors.New("empty input")

// Processor provides a fluent interface for renumbering a list.
// Each configuration method returns a new Processor, so a configured
// Processor can be reused and shared.
type Processor struct {
	// Source, exactly one of these is set
	text     string
	hasText  bool
	reader   io.Reader
	filename string

	options Options
}

// clone creates a shallow copy of the Processor with a copy of options.
func (p *Processor) clone() *Processor {
	return &Processor{
		text:     p.text,
		hasText:  p.hasText,
		reader:   p.reader,
		filename: p.filename,
		options:  p.options.clone(),
	}
}

// Format forces the input format instead of detecting it.
func (p *Processor) Format(f format.Format) *Processor {
	np := p.clone()
	np.options.format = f
	return np
}

// Language sets the OCR language(s) used for image input, e.g. "eng" or
// "eng+chi_sim".
func (p *Processor) Language(lang string) *Processor {
	np := p.clone()
	np.options.language = lang
	return np
}

// Navigation sets how page navigation is filtered out of HTML input.
func (p *Processor) Navigation(mode htmldoc.NavigationExclusionMode) *Processor {
	np := p.clone()
	np.options.navigation = mode
	return np
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Lines returns the trimmed, non-empty input lines the analyzer works on.
func (p *Processor) Lines() ([]string, error) {
	switch {
	case p.hasText:
		f := p.options.format
		if f == format.Unknown {
			f = format.Text
		}
		return p.read(strings.NewReader(p.text), "text", f)

	case p.filename != "":
		return p.fileLines()

	case p.reader != nil:
		return p.read(p.reader, "input", p.options.format)
	}

	return nil, errors.New("no input specified")
}

// fileLines reads a file, taking the format from its extension when it
// is not forced.
func (p *Processor) fileLines() ([]string, error) {
	f := p.options.format
	if f == format.Unknown {
		f = format.Detect(p.filename)
	}

	if f == format.HTML {
		doc, err := htmldoc.Open(p.filename, p.htmlOptions())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p.filename, err)
		}
		return text.Lines(strings.Join(doc.Lines(), "\n")), nil
	}

	file, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return p.read(file, p.filename, f)
}

// read extracts lines from r in format f, sniffing the format from the
// leading bytes when f is Unknown.
func (p *Processor) read(r io.Reader, name string, f format.Format) ([]string, error) {
	if f == format.Unknown {
		detected, peeked, err := format.DetectFromReader(r)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		f, r = detected, peeked
	}

	if f == format.HTML {
		doc, err := htmldoc.OpenReader(r, p.htmlOptions())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return text.Lines(strings.Join(doc.Lines(), "\n")), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	switch f {
	case format.Text:
		return text.Lines(string(data)), nil

	case format.Image:
		recognized, err := ocr.Recognize(data, p.options.language)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return text.Lines(recognized), nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s", format.ErrUnsupported, name)
}

func (p *Processor) htmlOptions() htmldoc.Options {
	return htmldoc.Options{Navigation: p.options.navigation}
}

// Analyze classifies the input lines.
//
// Returns ErrEmptyInput when there is nothing to analyze,
// sequence.ErrTooFewLines when there are fewer than sequence.MinLines
// lines, and sequence.ErrUnrecognizedPattern when the last line does not
// look like a list element.
func (p *Processor) Analyze() (*sequence.Result, []Warning, error) {
	lines, err := p.Lines()
	if err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, ErrEmptyInput
	}
	return sequence.Analyze(lines)
}

// Text returns the renumbered list, with the leading text (if any) on the
// first line.
//
// When the last line does not look like a list element, the error matches
// both render.ErrAnalysisFailed and sequence.ErrUnrecognizedPattern.
//
// Example:
//
//	out, warnings, err := renumber.FromText(pasted).Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", renumber.FormatWarnings(warnings))
//	}
func (p *Processor) Text() (string, []Warning, error) {
	result, warnings, err := p.Analyze()
	if errors.Is(err, sequence.ErrUnrecognizedPattern) {
		return "", warnings, fmt.Errorf("%w: %w", render.ErrAnalysisFailed, err)
	}
	if err != nil {
		return "", warnings, err
	}

	out, err := render.Result(result)
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Error()
	}
	return strings.Join(parts, "\n")
}
