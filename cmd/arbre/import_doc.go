package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/arbre/storage"
	"github.com/revelaction/arbre/storage/filesystem"
	"github.com/revelaction/arbre/storage/sqlite/zombiezen"
)

func importCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "copy the documents of a directory into a SQLite database",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "directory of JSON documents",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "SQLite database, created if needed",
				Required: true,
			},
			noProgressFlag,
		},
		Action: func(c *cli.Context) error {
			return importDocCommand(c.String("from"), c.String("to"), !c.Bool("no-progress"), ui)
		},
	}
}

var noProgressFlag = &cli.BoolFlag{
	Name:  "no-progress",
	Usage: "do not show the progress bar",
}

func importDocCommand(from, to string, progress bool, ui UI) error {
	src, err := filesystem.NewDocStore(from)
	if err != nil {
		return err
	}

	dst, pool, err := zombiezen.OpenDocStore(to)
	if err != nil {
		return err
	}
	defer pool.Close()

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", from)
	count, err := copyDocs(src, dst, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
	return nil
}

// copyDocs writes every document of src in dst, in src order.
func copyDocs(src storage.DocReader, dst storage.DocWriter, progress bool) (int, error) {
	docs, err := src.List("")
	if err != nil {
		return 0, err
	}

	var bar *uiprogress.Bar
	if progress {
		uiprogress.Start()
		defer uiprogress.Stop()

		bar = uiprogress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			if b.Current() == 0 {
				return ""
			}
			return docs[b.Current()-1].Title
		})
	}

	count := 0
	for _, meta := range docs {
		doc, err := src.Read(meta.Id)
		if err != nil {
			return count, fmt.Errorf("failed to read doc %s (id %d): %w", meta.Title, meta.Id, err)
		}

		if _, err := dst.Write(doc); err != nil {
			return count, fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
		}

		count++
		if bar != nil {
			bar.Incr()
		}
	}

	return count, nil
}
