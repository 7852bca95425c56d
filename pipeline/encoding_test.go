package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/arbre/config"
)

func scanAll(t *testing.T, input []byte, encoding string) []string {
	t.Helper()
	lines, err := NewLineReader(bytes.NewReader(input), encoding)
	require.NoError(t, err)

	var got []string
	for lines.Scan() {
		got = append(got, lines.Text())
	}
	require.NoError(t, lines.Err())
	return got
}

func TestLineReaderLatin9(t *testing.T) {
	// "café 5€" and "año" in ISO-8859-15
	input := []byte("caf\xe9 5\xa4\nan\xf1o\n")

	got := scanAll(t, input, config.EncodingLatin9)
	assert.Equal(t, []string{"café 5€", "año"}, got)
}

func TestLineReaderLatin1(t *testing.T) {
	// 0xa4 is the currency sign in ISO-8859-1
	got := scanAll(t, []byte("5\xa4"), config.EncodingLatin1)
	assert.Equal(t, []string{"5¤"}, got)
}

func TestLineReaderUTF8(t *testing.T) {
	got := scanAll(t, []byte("café\n\nfin"), config.EncodingUTF8)
	assert.Equal(t, []string{"café", "", "fin"}, got)
}

func TestLineReaderUnknownEncoding(t *testing.T) {
	_, err := NewLineReader(strings.NewReader(""), "koi8-r")
	assert.Error(t, err)
}
