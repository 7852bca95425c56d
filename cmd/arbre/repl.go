package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/arbre/pipeline"
	"github.com/revelaction/arbre/repl"
)

func replCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "repl",
		Usage:     "analyze interactively the entered lines",
		ArgsUsage: " ",
		Action: func(c *cli.Context) error {
			s, err := newSession(c, ui)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			proc, err := pipeline.StartProcess(c.Context, s.cfg, ui.Err)
			if err != nil {
				return err
			}
			defer proc.Close()

			o := pipeline.NewOrchestrator(proc, s.renderer, ui.Out)
			o.Stages = s.stages
			o.Log = s.log

			return repl.NewHandler(o, ui.Out).Run(c.Context)
		},
	}
}
