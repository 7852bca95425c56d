package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/arbre/storage/filesystem"
	"github.com/revelaction/arbre/storage/sqlite/zombiezen"
)

func exportCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "copy the documents of a SQLite database into a directory",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "SQLite database",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "directory of JSON documents, created if needed",
				Required: true,
			},
			noProgressFlag,
		},
		Action: func(c *cli.Context) error {
			return exportDocCommand(c.String("from"), c.String("to"), !c.Bool("no-progress"), ui)
		},
	}
}

func exportDocCommand(from, to string, progress bool, ui UI) error {
	if _, err := os.Stat(from); err != nil {
		return fmt.Errorf("repository not found: %s", from)
	}

	src, pool, err := zombiezen.OpenDocStore(from)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Ensure target directory exists
	if err := os.MkdirAll(to, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewDocStore(to)
	if err != nil {
		return err
	}

	count, err := copyDocs(src, dst, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, from, to)
	return nil
}
