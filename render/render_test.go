package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/renumber/sequence"
)

func el(s string) sequence.Line   { return sequence.Line{IsElement: true, Content: s} }
func verb(s string) sequence.Line { return sequence.Line{Content: s} }

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		leading string
		seq     []sequence.Line
		want    string
	}{
		{
			name:    "leading text",
			leading: "Steps:",
			seq:     []sequence.Line{{}, el("Open the box."), el("Remove the item."), el("Close the box.")},
			want:    "Steps:\n1. Open the box.\n2. Remove the item.\n3. Close the box.",
		},
		{
			name: "no leading text",
			seq:  []sequence.Line{el("a"), el("b")},
			want: "1. a\n2. b",
		},
		{
			name: "verbatim resets numbering",
			seq:  []sequence.Line{el("a"), el("b"), verb("---"), el("c"), el("d")},
			want: "1. a\n2. b\n---\n1. c\n2. d",
		},
		{
			name: "verbatim first",
			seq:  []sequence.Line{verb("Part one"), el("a"), verb("Part two"), el("b")},
			want: "Part one\n1. a\nPart two\n1. b",
		},
		{
			name:    "only the first empty entry is dropped",
			leading: "Intro",
			seq:     []sequence.Line{{}, el("a")},
			want:    "Intro\n1. a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.leading, tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Empty(t *testing.T) {
	for _, seq := range [][]sequence.Line{nil, {}, {{}}} {
		_, err := Render("Steps:", seq)
		if !errors.Is(err, ErrAnalysisFailed) {
			t.Errorf("Render(%v) error = %v, want ErrAnalysisFailed", seq, err)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	seq := []sequence.Line{{}, el("a"), verb("--"), el("b"), el("c")}
	first, err := Render("Intro", seq)
	require.NoError(t, err)
	second, err := Render("Intro", seq)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, sequence.Line{}, seq[0], "input must not be modified")
}

func TestResult(t *testing.T) {
	lines := []string{
		"Steps:",
		"1. Open the box.",
		"2. Remove the item.",
		"3. Close the box.",
	}
	r, _, err := sequence.Analyze(lines)
	require.NoError(t, err)

	got, err := Result(r)
	require.NoError(t, err)
	assert.Equal(t, "Steps:\n1. Open the box.\n2. Remove the item.\n3. Close the box.", got)

	_, err = Result(nil)
	assert.ErrorIs(t, err, ErrAnalysisFailed)

	_, err = Result(&sequence.Result{})
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}
