package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/revelaction/arbre/analysis"
)

// newObservedRenderer returns a Renderer whose diagnostics are captured.
func newObservedRenderer() (*Renderer, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	r := NewRenderer()
	r.Log = zap.New(core)
	return r, logs
}

func loadSentences(t *testing.T) []analysis.Sentence {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sentences.json"))
	require.NoError(t, err)

	var sentences []analysis.Sentence
	require.NoError(t, json.Unmarshal(data, &sentences))
	return sentences
}

// TestResultsGolden renders testdata/sentences.json for every stage and
// compares with testdata/<stage>.golden.
func TestResultsGolden(t *testing.T) {
	sentences := loadSentences(t)

	for _, stage := range Stages() {
		t.Run(stage.String(), func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", stage.String()+".golden"))
			require.NoError(t, err)

			r, logs := newObservedRenderer()
			var buf bytes.Buffer
			require.NoError(t, r.Results(&buf, sentences, stage))

			assert.Equal(t, string(want), buf.String())
			assert.Equal(t, 0, logs.Len())
		})
	}
}

func TestResultsEmptyLinePrintsOnlyBanner(t *testing.T) {
	r := NewRenderer()
	for _, stage := range Stages() {
		var buf bytes.Buffer
		require.NoError(t, r.Results(&buf, nil, stage))
		assert.Equal(t, stage.Banner()+"\n", buf.String())
	}
}

func TestResultsSeparatesSentences(t *testing.T) {
	sentences := []analysis.Sentence{
		{Words: []analysis.Word{{Form: "Hola", Lemma: "hola", Tag: "I"}}},
		{Words: []analysis.Word{{Form: "Adiós", Lemma: "adiós", Tag: "I"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Results(&buf, sentences, Tagged))

	want := "-------- TAGGER results -----------\n" +
		"Hola hola I\n" +
		"\n" +
		"Adiós adiós I\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestResultsMissingTreesAreReported(t *testing.T) {
	sentences := []analysis.Sentence{
		{Words: []analysis.Word{{Form: "Hola", Lemma: "hola", Tag: "I"}}},
	}

	r, logs := newObservedRenderer()

	var buf bytes.Buffer
	require.NoError(t, r.Results(&buf, sentences, Parsed))
	assert.Equal(t, Parsed.Banner()+"\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Results(&buf, sentences, Dependency))
	assert.Equal(t, Dependency.Banner()+"\n", buf.String())

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "missing parse tree", logs.All()[0].Message)
	assert.Equal(t, "missing dependency tree", logs.All()[1].Message)
}

func TestResultsUnknownStage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().Results(&buf, nil, Stage(7))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestColorMarksHeadAndLabels(t *testing.T) {
	r := NewRenderer()
	r.HasColor = true

	n := &analysis.Node{Label: "sn", Children: []*analysis.Node{
		{Head: true, Word: &analysis.Word{Form: "casa", Lemma: "casa", Tag: "NCFS000"}},
	}}

	out := r.TreeString(n)
	assert.True(t, strings.HasPrefix(out, Yellow256+"sn"+Off+"_[\n"))
	assert.Contains(t, out, "  "+Green256+"+"+Off+"(casa casa NCFS000)\n")
}
