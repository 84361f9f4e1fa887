// Package text turns a pasted block of text into the lines the sequence
// analyzer works on.
//
// A block is split on newlines and on runs of four or more whitespace
// characters, which is how list items often arrive when copied out of a
// PDF viewer or a web page that dropped the line breaks:
//
//	lines := text.Lines("Steps:    1. Open    2. Fill\n3. Close")
//	// ["Steps:", "1. Open", "2. Fill", "3. Close"]
//
// Every line is trimmed, empty lines are dropped, and the result is
// normalized to Unicode NFC so that visually identical input is measured
// the same way.
package text
