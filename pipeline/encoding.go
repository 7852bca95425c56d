package pipeline

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/revelaction/arbre/config"
)

// maxLineSize is the longest input line accepted
const maxLineSize = 1024 * 1024

// NewLineReader returns a scanner over the lines of r, decoded from the given
// encoding to UTF-8.
func NewLineReader(r io.Reader, encoding string) (*bufio.Scanner, error) {
	var decoded io.Reader
	switch encoding {
	case config.EncodingLatin9:
		decoded = charmap.ISO8859_15.NewDecoder().Reader(r)
	case config.EncodingLatin1:
		decoded = charmap.ISO8859_1.NewDecoder().Reader(r)
	case config.EncodingUTF8:
		decoded = r
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner, nil
}
