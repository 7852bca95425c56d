package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/arbre/analysis"
)

func TestFormatSenses(t *testing.T) {
	senses := []analysis.Sense{{Id: "01775164-n", Rank: 0.62}, {Id: "01775557-n", Rank: 0.21}}
	assert.Equal(t, "01775164-n:0.62/01775557-n:0.21", FormatSenses(senses))
}

func TestFormatSensesKeepsProducerOrder(t *testing.T) {
	senses := []analysis.Sense{{Id: "b", Rank: 0.1}, {Id: "a", Rank: 0.9}}
	assert.Equal(t, "b:0.1/a:0.9", FormatSenses(senses))
}

func TestFormatSensesEmpty(t *testing.T) {
	assert.Equal(t, "", FormatSenses(nil))
	assert.Equal(t, "", FormatSenses([]analysis.Sense{}))
}

func TestWordTripleWithoutSenses(t *testing.T) {
	r := NewRenderer()
	w := analysis.Word{Form: "casa", Lemma: "casa", Tag: "NCFS000"}
	assert.Equal(t, "(casa casa NCFS000)", r.word(w))
}

func TestNextSenseMode(t *testing.T) {
	r := NewRenderer()
	require.Equal(t, SensesAll, r.Senses)

	r.NextSenseMode()
	assert.Equal(t, SensesMFS, r.Senses)
	r.NextSenseMode()
	assert.Equal(t, SensesNone, r.Senses)
	r.NextSenseMode()
	assert.Equal(t, SensesAll, r.Senses)

	r.Senses = "bogus"
	r.NextSenseMode()
	assert.Equal(t, SensesAll, r.Senses)
}

func TestParseSenseMode(t *testing.T) {
	m, err := ParseSenseMode("mfs")
	require.NoError(t, err)
	assert.Equal(t, SensesMFS, m)

	_, err = ParseSenseMode("ukb")
	assert.Error(t, err)
}

func TestTaggedLineColorSenses(t *testing.T) {
	r := NewRenderer()
	r.HasColor = true
	w := analysis.Word{Form: "gato", Lemma: "gato", Tag: "NCMS000", Senses: []analysis.Sense{{Id: "02121620-n", Rank: 1}}}

	assert.Equal(t, "gato gato NCMS000 "+Grey256+"02121620-n:1"+Off, r.taggedLine(w))

	r.Senses = SensesNone
	assert.Equal(t, "gato gato NCMS000", r.taggedLine(w))
}
