package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func lsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list the stored documents",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "label",
				Aliases: []string{"l"},
				Usage:   "only documents with a label containing this string",
			},
		},
		Action: func(c *cli.Context) error {
			var p Pool
			defer p.Close()

			repo, err := NewDocRepository(&p, c.String("doc-path"), false)
			if err != nil {
				return err
			}

			docs, err := repo.List(c.String("label"))
			if err != nil {
				return err
			}

			for _, doc := range docs {
				if len(doc.Labels) == 0 {
					fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
					continue
				}
				fmt.Fprintf(ui.Out, "📖 %d %s [%s]\n", doc.Id, doc.Title, strings.Join(doc.Labels, ", "))
			}

			return nil
		},
	}
}
