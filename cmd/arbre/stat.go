package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/arbre/stat"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:         "stat",
		Usage:        "print the statistics of a stored document",
		ArgsUsage:    "<docId>",
		BashComplete: completeDocIds(ui),
		Action: func(c *cli.Context) error {
			docId, err := docIdArg(c)
			if err != nil {
				return err
			}

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

			hdl := stat.NewHandler()
			hdl.Aggregate(doc)
			printStats(ui, hdl.Get())
			return nil
		},
	}
}

func printStats(ui UI, stats stat.Stats) {
	fmt.Fprintf(ui.Out, "Num sentences %d, num words %d, words per sentence %d\n",
		stats.NumSentences, stats.NumWords, stats.WordsPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num chunks %d, max parse depth %d\n", stats.NumChunks, stats.MaxParseDepth)
	fmt.Fprintf(ui.Out, "Missing parse trees %d, missing dependency trees %d\n",
		stats.NumMissingParse, stats.NumMissingDep)

	lengths := make([]int, 0, len(stats.WordsPerSentenceDis))
	for l := range stats.WordsPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Fprintf(ui.Out, "%6d words: %d\n", l, stats.WordsPerSentenceDis[l])
	}
}
