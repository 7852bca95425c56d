package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/revelaction/arbre/analysis"
)

const (
	senseSeparator = "/"
	rankSeparator  = ":"
)

// SenseMode determines how the sense list of a word is shown.
type SenseMode string

const (
	// SensesAll shows every sense with its rank
	SensesAll SenseMode = "all"

	// SensesMFS shows only the most frequent sense, without rank
	SensesMFS SenseMode = "mfs"

	SensesNone SenseMode = "none"
)

func SupportedSenseModes() []SenseMode {
	return []SenseMode{SensesAll, SensesMFS, SensesNone}
}

func ParseSenseMode(s string) (SenseMode, error) {
	for _, m := range SupportedSenseModes() {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("unknown sense mode %q", s)
}

// FormatSenses renders senses as sense:rank pairs separated by "/", in the
// given order. It returns the empty string for an empty list.
func FormatSenses(senses []analysis.Sense) string {
	pairs := make([]string, 0, len(senses))
	for _, s := range senses {
		pairs = append(pairs, s.Id+rankSeparator+strconv.FormatFloat(s.Rank, 'f', -1, 64))
	}

	return strings.Join(pairs, senseSeparator)
}

func (r *Renderer) senses(w analysis.Word) string {
	if len(w.Senses) == 0 {
		return ""
	}

	switch r.Senses {
	case SensesMFS:
		return w.Senses[0].Id
	case SensesNone:
		return ""
	}

	return FormatSenses(w.Senses)
}

// NextSenseMode sets the Senses option to the next one, following the
// SupportedSenseModes() order.
func (r *Renderer) NextSenseMode() {
	supported := SupportedSenseModes()
	for i, mode := range supported {
		if mode == r.Senses {
			r.Senses = supported[(i+1)%len(supported)]
			return
		}
	}

	r.Senses = SensesAll
}
