package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{"empty", "", []string{}},
		{"only whitespace", " \n\t\n   ", []string{}},
		{"newlines", "Steps:\n1. a\n2. b", []string{"Steps:", "1. a", "2. b"}},
		{"crlf", "1. a\r\n2. b\r\n", []string{"1. a", "2. b"}},
		{"blank lines dropped", "1. a\n\n\n2. b", []string{"1. a", "2. b"}},
		{"trimmed", "   1. a   \n\t2. b", []string{"1. a", "2. b"}},
		{"whitespace run", "1. a    2. b        3. c", []string{"1. a", "2. b", "3. c"}},
		{"three spaces do not split", "1. a   b", []string{"1. a   b"}},
		{"ideographic spaces", "１。甲　　　　２。乙", []string{"１。甲", "２。乙"}},
		{"tab run", "1. a\t\t\t\t2. b", []string{"1. a", "2. b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.block))
		})
	}
}

func TestLines_NFC(t *testing.T) {
	// "é" as e + combining acute accent
	lines := Lines("1. cafe\u0301")
	assert.Equal(t, []string{"1. caf\u00e9"}, lines)
}
