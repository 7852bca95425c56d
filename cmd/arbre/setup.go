package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/arbre/config"
	"github.com/revelaction/arbre/render"
	"github.com/revelaction/arbre/storage"
	"github.com/revelaction/arbre/storage/filesystem"
	"github.com/revelaction/arbre/storage/sqlite/zombiezen"
)

const sqliteExt = ".db"

// session holds what every rendering command needs: the configuration
// overlaid by the flags, the logger and a configured renderer.
type session struct {
	cfg      config.Config
	log      *zap.Logger
	renderer *render.Renderer
	stages   []render.Stage
}

func newSession(c *cli.Context, ui UI) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.LogLevel, ui.Err)
	if err != nil {
		return nil, err
	}

	stages, err := stagesFlag(c, cfg)
	if err != nil {
		return nil, err
	}

	// validated by loadConfig
	mode, _ := render.ParseSenseMode(cfg.Senses)

	r := render.NewRenderer()
	r.HasColor = c.Bool("color")
	r.Senses = mode
	r.Log = log

	return &session{
		cfg:      cfg,
		log:      log,
		renderer: r,
		stages:   stages,
	}, nil
}

// loadConfig reads the config file, if any, and overlays the flags given in
// the command line or the environment.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}

	if c.IsSet("lang") {
		cfg.Lang = c.String("lang")
	}

	if c.IsSet("encoding") {
		cfg.Encoding = c.String("encoding")
	}

	if c.IsSet("analyzer") {
		cfg.Analyzer = strings.Fields(c.String("analyzer"))
	}

	if c.IsSet("senses") {
		cfg.Senses = c.String("senses")
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// stagesFlag returns the stages given in the --stages flag, or the stages
// of the enabled modules.
func stagesFlag(c *cli.Context, cfg config.Config) ([]render.Stage, error) {
	names := c.StringSlice("stages")
	if len(names) == 0 {
		return cfg.Modules.Stages(), nil
	}

	stages := []render.Stage{}
	for _, name := range names {
		st, err := render.ParseStage(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}

	return stages, nil
}

// newLogger returns a console logger writing to w. Diagnostics never go to
// the results stream.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)

	return zap.New(core).Named("arbre"), nil
}

// Pool keeps the SQLite pool opened by NewDocRepository, if any.
type Pool struct {
	p *sqlitex.Pool
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}

// NewDocRepository opens the repository at path: a directory is a
// filesystem store, anything else a SQLite database. If create is true, a
// missing SQLite database is created.
func NewDocRepository(p *Pool, path string, create bool) (storage.DocRepository, error) {
	if path == "" {
		return nil, errors.New("no document repository given, use --doc-path")
	}

	info, err := os.Stat(path)
	switch {
	case create && errors.Is(err, fs.ErrNotExist) && filepath.Ext(path) == sqliteExt:
	case err != nil:
		return nil, fmt.Errorf("repository not found: %s", path)
	case info.IsDir():
		return filesystem.NewDocStore(path)
	}

	store, pool, err := zombiezen.OpenDocStore(path)
	if err != nil {
		return nil, err
	}

	p.p = pool
	return store, nil
}
