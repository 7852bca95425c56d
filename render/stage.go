package render

import (
	"fmt"
	"strings"
)

// Stage identifies the analysis pass whose results are printed.
type Stage int

const (
	Tagged Stage = iota
	Parsed
	Dependency
)

// Stages returns all stages in output order.
func Stages() []Stage {
	return []Stage{Tagged, Parsed, Dependency}
}

func (s Stage) String() string {
	switch s {
	case Tagged:
		return "tagged"
	case Parsed:
		return "parsed"
	case Dependency:
		return "dep"
	}

	return fmt.Sprintf("stage(%d)", int(s))
}

// Banner returns the line that precedes the results of the stage.
func (s Stage) Banner() string {
	var name string
	switch s {
	case Tagged:
		name = "TAGGER"
	case Parsed:
		name = "CHUNKER"
	case Dependency:
		name = "DEPENDENCY PARSER"
	default:
		name = strings.ToUpper(s.String())
	}

	return "-------- " + name + " results -----------"
}

func ParseStage(s string) (Stage, error) {
	for _, st := range Stages() {
		if st.String() == s {
			return st, nil
		}
	}

	return 0, fmt.Errorf("unknown stage %q", s)
}
