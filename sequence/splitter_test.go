package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantPrefix string
		wantBody   string
		wantOK     bool
	}{
		{"period", "1. Open the box.", "1", "Open the box.", true},
		{"colon", "12:Remove the item", "12", "Remove the item", true},
		{"space", "3 Close the box", "3", "Close the box", true},
		{"ideographic full stop", "４。打开盒子", "４", "打开盒子", true},
		{"parenthesized", "(3) Check the lid", "(3)", "Check the lid", true},
		{"full-width parentheses", "（3） 检查", "（3）", "检查", true},
		{"ideographic space", "5　Done", "5", "Done", true},
		{"whitespace run after period", "6.    Wait", "6", "Wait", true},
		{"first delimiter wins", "Step 1: go", "Step", "1: go", true},
		{"no delimiter", "NoDelimiterHere", "", "", false},
		{"dashes", "---", "", "", false},
		{"empty body", "7.", "7", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, body, ok := Split(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestIsNumericPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   bool
	}{
		{"1", true},
		{"42", true},
		{"(3)", true},
		{"（3）", true},
		{"３", true},
		{"１２", true},
		{"Step", false},
		{"-", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsNumericPrefix(tt.prefix); got != tt.want {
			t.Errorf("IsNumericPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	line, ok := classify("2. Remove the item.")
	assert.True(t, ok)
	assert.Equal(t, Line{IsElement: true, Content: "Remove the item."}, line)

	line, ok = classify("---")
	assert.False(t, ok)
	assert.Equal(t, Line{IsElement: false, Content: "---"}, line)

	line, ok = classify("8:")
	assert.False(t, ok)
	assert.Equal(t, Line{IsElement: false, Content: "8:"}, line, "empty body keeps the whole line")
}

func TestCountSymbols(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"plain words", 0},
		{"1. Open the box.", 2},
		{"a, b! c&d*e", 4},
		{"《书名》：内容，更多。", 5},
		{"“quoted” … ~", 4},
		{"colon: not counted", 0},
	}

	for _, tt := range tests {
		if got := countSymbols(tt.s); got != tt.want {
			t.Errorf("countSymbols(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
