package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// UI contains the streams of the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	// a missing .env file is not an error
	_ = godotenv.Load()

	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "arbre: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "arbre",
		Usage:                "analyze text and print the tagger, chunker and dependency parser results",
		Version:              BuildTag,
		HideVersion:          true,
		Reader:               ui.In,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			analyzeCommand(ui),
			replCommand(ui),
			docCommand(ui),
			lsCommand(ui),
			importCommand(ui),
			exportCommand(ui),
			statCommand(ui),
			versionCommand(ui),
			bashCommand(ui),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"ARBRE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "doc-path",
			Aliases: []string{"d"},
			Usage:   "document repository, a directory of JSON files or a SQLite database",
			EnvVars: []string{"ARBRE_DOC_PATH"},
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Usage:   "data directory of the analyzer",
			EnvVars: []string{"ARBRE_DATA_DIR"},
		},
		&cli.StringFlag{
			Name:    "lang",
			Usage:   "language of the input text",
			EnvVars: []string{"ARBRE_LANG"},
		},
		&cli.StringFlag{
			Name:    "encoding",
			Usage:   "encoding of the input stream: latin9, latin1 or utf-8",
			EnvVars: []string{"ARBRE_ENCODING"},
		},
		&cli.StringFlag{
			Name:    "analyzer",
			Usage:   "command line of the external analyzer",
			EnvVars: []string{"ARBRE_ANALYZER"},
		},
		&cli.StringFlag{
			Name:    "senses",
			Usage:   "sense display mode: all, mfs or none",
			EnvVars: []string{"ARBRE_SENSES"},
		},
		&cli.StringSliceFlag{
			Name:    "stages",
			Usage:   "results to print: tagged, parsed, dep (default: the stages of the enabled modules)",
			EnvVars: []string{"ARBRE_STAGES"},
		},
		&cli.BoolFlag{
			Name:    "color",
			Usage:   "colorize words and labels",
			EnvVars: []string{"ARBRE_COLOR"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "diagnostics level: debug, info, warn, error",
			EnvVars: []string{"ARBRE_LOG_LEVEL"},
		},
	}
}
