// Package format detects the kind of source a pasted list comes from.
package format

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupported is returned by callers when a source has a format they
// cannot extract lines from.
var ErrUnsupported = errors.New("unsupported input format")

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates plain UTF-8 text.
	Text
	// HTML indicates an HTML document or fragment.
	HTML
	// Image indicates a raster image to be read with OCR.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text", ".md":
		return Text
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return Image
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine the format.
// Data that matches no signature but is valid UTF-8 is Text.
func DetectFromMagic(data []byte) Format {
	if isImageMagic(data) {
		return Image
	}
	if detectHTMLMagic(data) {
		return HTML
	}
	if len(data) > 0 && utf8.Valid(data) {
		return Text
	}
	return Unknown
}

// isImageMagic reports whether data starts with a PNG, JPEG, GIF, BMP,
// TIFF or WEBP signature.
func isImageMagic(data []byte) bool {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return true
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return true
	case isBMP(data):
		return true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return true
	}
	return false
}

// bmpHeaderSizes are the DIB header sizes of the BMP variants in use,
// from BITMAPCOREHEADER (12) to BITMAPV5HEADER (124).
var bmpHeaderSizes = map[uint32]bool{12: true, 40: true, 52: true, 56: true, 64: true, 108: true, 124: true}

// isBMP checks the "BM" signature, the reserved bytes 6..9 (always zero)
// and the DIB header size that follows the 14-byte file header. Text
// starting with "BM" fails the last two.
func isBMP(data []byte) bool {
	if len(data) < 18 || !bytes.HasPrefix(data, []byte("BM")) {
		return false
	}
	if binary.LittleEndian.Uint32(data[6:10]) != 0 {
		return false
	}
	return bmpHeaderSizes[binary.LittleEndian.Uint32(data[14:18])]
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	upper := strings.ToUpper(string(head))

	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	// Fragments copied from a browser usually start with a block element
	for _, tag := range []string{"<OL", "<UL", "<P>", "<P ", "<DIV", "<TABLE", "<BODY", "<META"} {
		if strings.HasPrefix(upper, tag) {
			return true
		}
	}

	return false
}

// DetectFromReader inspects the first bytes of r to determine its format.
// The returned reader yields the complete content, including the bytes
// that were inspected.
func DetectFromReader(r io.Reader) (Format, io.Reader, error) {
	br := bufio.NewReaderSize(r, 512)
	magic, err := br.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return Unknown, br, err
	}
	f := DetectFromMagic(magic)
	if f == Unknown && len(magic) > 0 && !utf8.Valid(magic) {
		// The peek may have cut a multi-byte rune in half
		if utf8.Valid(magic[:lastRuneStart(magic)]) {
			f = Text
		}
	}
	return f, br, nil
}

// lastRuneStart returns the index of the start of the last rune in b.
func lastRuneStart(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			return i
		}
	}
	return len(b)
}
