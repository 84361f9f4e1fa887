//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Available reports whether OCR support was compiled in.
func Available() bool { return true }

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	// A pasted list is a single column of lines
	if err := client.SetPageSegMode(gosseract.PageSegMode(PSM_SINGLE_BLOCK)); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting page segmentation mode: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage performs OCR on image data in any format Prepare
// accepts. Returns the recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	prepared, err := Prepare(imageData)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(prepared); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+chi_sim").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
