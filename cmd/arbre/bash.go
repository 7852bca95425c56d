package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const complete = `#! /bin/bash

_arbre_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # the app prints the suggestions when called with --generate-bash-completion
    if [[ "$cur" == "-"* ]]; then
        opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} ${cur} --generate-bash-completion )
    else
        opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} --generate-bash-completion )
    fi

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}

complete -o bashdefault -o default -o nospace -F _arbre_autocomplete arbre
`

func bashCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "bash",
		Usage: "print the bash completion script, f.ex. source <(arbre bash)",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprint(ui.Out, complete)
			return err
		},
	}
}
