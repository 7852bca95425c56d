package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/arbre/analysis"
	"github.com/revelaction/arbre/render"
)

func docCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "print the results of a stored document",
		ArgsUsage: "<docId>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "start",
				Usage: "first sentence to print",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of sentences to print, 0 for all",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the analysis as JSON",
			},
		},
		BashComplete: completeDocIds(ui),
		Action: func(c *cli.Context) error {
			docId, err := docIdArg(c)
			if err != nil {
				return err
			}

			s, err := newSession(c, ui)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			var p Pool
			defer p.Close()

			repo, err := NewDocRepository(&p, c.String("doc-path"), false)
			if err != nil {
				return err
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			sentences := window(doc.Sentences, c.Int("start"), c.Int("count"))

			if c.Bool("json") {
				return render.NewJSONRenderer(ui.Out).Render(sentences)
			}

			for _, st := range s.stages {
				if err := s.renderer.Results(ui.Out, sentences, st); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func docIdArg(c *cli.Context) (int, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("%s needs exactly one <docId> argument", c.Command.Name)
	}

	docId, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, fmt.Errorf("invalid docId %q", c.Args().First())
	}

	return docId, nil
}

// window returns count sentences from start. A zero count means up to the
// end.
func window(sentences []analysis.Sentence, start, count int) []analysis.Sentence {
	if start < 0 || start >= len(sentences) {
		return nil
	}

	sentences = sentences[start:]
	if count > 0 && count < len(sentences) {
		sentences = sentences[:count]
	}

	return sentences
}
