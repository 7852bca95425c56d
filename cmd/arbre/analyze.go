package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/arbre/analysis"
	"github.com/revelaction/arbre/pipeline"
)

func analyzeCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "analyze the standard input line by line and print the results",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "save",
				Usage: "store the analyzed text as a document with this title in the repository",
			},
			&cli.StringSliceFlag{
				Name:  "label",
				Usage: "label of the saved document",
			},
		},
		Action: func(c *cli.Context) error {
			return analyzeAction(c, ui)
		},
	}
}

func analyzeAction(c *cli.Context, ui UI) error {
	s, err := newSession(c, ui)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	// open the repository before starting the analyzer
	var p Pool
	defer p.Close()

	title := c.String("save")
	doc := analysis.Doc{Title: title, Labels: c.StringSlice("label")}

	var save func() error
	if title != "" {
		repo, err := NewDocRepository(&p, c.String("doc-path"), true)
		if err != nil {
			return err
		}

		save = func() error {
			id, err := repo.Write(doc)
			if err != nil {
				return fmt.Errorf("save %q: %w", title, err)
			}
			fmt.Fprintf(ui.Err, "📖 %d %s saved\n", id, title)
			return nil
		}
	}

	lines, err := pipeline.NewLineReader(ui.In, s.cfg.Encoding)
	if err != nil {
		return err
	}

	proc, err := pipeline.StartProcess(c.Context, s.cfg, ui.Err)
	if err != nil {
		return err
	}

	o := pipeline.NewOrchestrator(proc, s.renderer, ui.Out)
	o.Stages = s.stages
	o.Log = s.log
	if save != nil {
		o.Collect = func(sentences []analysis.Sentence) {
			doc.Sentences = append(doc.Sentences, sentences...)
		}
	}

	runErr := o.Run(c.Context, lines)
	if err := proc.Close(); err != nil && runErr == nil {
		s.log.Warn("analyzer exit", zap.Error(err))
	}

	if runErr != nil {
		return runErr
	}

	if save == nil {
		return nil
	}

	if len(doc.Sentences) == 0 {
		return errors.New("nothing to save, no sentences were analyzed")
	}

	return save()
}
