package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// completeDocIds suggests the ids of the stored documents.
func completeDocIds(ui UI) cli.BashCompleteFunc {
	return func(c *cli.Context) {
		if c.NArg() > 0 {
			return
		}

		var p Pool
		defer p.Close()

		repo, err := NewDocRepository(&p, c.String("doc-path"), false)
		if err != nil {
			return
		}

		docs, err := repo.List("")
		if err != nil {
			return
		}

		for _, doc := range docs {
			fmt.Fprintln(ui.Out, doc.Id)
		}
	}
}
