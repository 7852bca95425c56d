package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/arbre/render"
)

const (
	EncodingLatin9 = "latin9"
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf-8"

	DefaultLang = "es"
)

// Modules selects the active analysis stages. Each one can be enabled
// independently, as long as the stages it depends on are enabled too.
type Modules struct {
	Tokenizer bool `yaml:"tokenizer" json:"tokenizer"`
	Splitter  bool `yaml:"splitter" json:"splitter"`
	Morfo     bool `yaml:"morfo" json:"morfo"`
	Tagger    bool `yaml:"tagger" json:"tagger"`
	Chunker   bool `yaml:"chunker" json:"chunker"`
	Dep       bool `yaml:"dep" json:"dep"`
	Senses    bool `yaml:"senses" json:"senses"`
}

// AllModules returns a Modules value with every stage enabled.
func AllModules() Modules {
	return Modules{
		Tokenizer: true,
		Splitter:  true,
		Morfo:     true,
		Tagger:    true,
		Chunker:   true,
		Dep:       true,
		Senses:    true,
	}
}

// Stages returns the render passes the modules produce, in output order.
func (m Modules) Stages() []render.Stage {
	stages := []render.Stage{}
	if m.Tagger {
		stages = append(stages, render.Tagged)
	}

	if m.Chunker {
		stages = append(stages, render.Parsed)
	}

	if m.Dep {
		stages = append(stages, render.Dependency)
	}

	return stages
}

// Validate checks that every enabled stage has its input stage enabled.
func (m Modules) Validate() error {
	chain := []struct {
		enabled  bool
		name     string
		requires bool
		needs    string
	}{
		{m.Splitter, "splitter", m.Tokenizer, "tokenizer"},
		{m.Morfo, "morfo", m.Splitter, "splitter"},
		{m.Tagger, "tagger", m.Morfo, "morfo"},
		{m.Chunker, "chunker", m.Tagger, "tagger"},
		{m.Dep, "dep", m.Chunker, "chunker"},
		{m.Senses, "senses", m.Morfo, "morfo"},
	}

	var errs []error
	for _, c := range chain {
		if c.enabled && !c.requires {
			errs = append(errs, fmt.Errorf("module %s needs module %s", c.name, c.needs))
		}
	}

	return errors.Join(errs...)
}

// Config holds the options of an analysis session.
type Config struct {
	// Installation/data root path of the external analyzer
	DataDir string `yaml:"data_dir"`

	Lang string `yaml:"lang"`

	Modules Modules `yaml:"modules"`

	// Encoding of the input stream
	Encoding string `yaml:"encoding"`

	// Senses is the sense display mode: all, mfs or none
	Senses string `yaml:"senses"`

	// Analyzer is the command line of the external analyzer process
	Analyzer []string `yaml:"analyzer"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration of the reference analyzer: spanish, all
// modules on, latin9 input.
func Default() Config {
	return Config{
		Lang:     DefaultLang,
		Modules:  AllModules(),
		Encoding: EncodingLatin9,
		Senses:   string(render.SensesAll),
		LogLevel: "warn",
	}
}

// Load reads a YAML config file. Options absent in the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: YAML decoding error: %w", path, err)
	}

	return cfg, nil
}

func SupportedEncodings() []string {
	return []string{EncodingLatin9, EncodingLatin1, EncodingUTF8}
}

// Validate checks the options that have a closed set of values.
func (c Config) Validate() error {
	var errs []error

	if c.Lang == "" {
		errs = append(errs, errors.New("lang must not be empty"))
	}

	if !isSupportedEncoding(c.Encoding) {
		errs = append(errs, fmt.Errorf("unknown encoding %q", c.Encoding))
	}

	if _, err := render.ParseSenseMode(c.Senses); err != nil {
		errs = append(errs, err)
	}

	if err := c.Modules.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func isSupportedEncoding(enc string) bool {
	for _, e := range SupportedEncodings() {
		if e == enc {
			return true
		}
	}

	return false
}
