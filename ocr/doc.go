// Package ocr reads lists out of screenshots and scans.
//
// The [Client] wraps the Tesseract OCR engine via gosseract and is only
// functional when built with the "ocr" tag:
//
//	go build -tags ocr ./...
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag every Client method returns [ErrOCRNotEnabled]. [Prepare]
// is always available; it normalizes images into a form Tesseract reads
// well.
package ocr

import (
	"errors"
	"fmt"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, matching Tesseract's values.
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Recognize runs OCR over imageData with the given language ("" keeps
// Tesseract's default) and returns the recognized text.
func Recognize(imageData []byte, lang string) (string, error) {
	client, err := New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			return "", fmt.Errorf("setting OCR language %q: %w", lang, err)
		}
	}
	return client.RecognizeImage(imageData)
}
