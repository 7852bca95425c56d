package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/arbre/pipeline"
	"github.com/revelaction/arbre/render"
)

const (
	// commandPrefix is the character in the prompt that starts a session
	// command. Any other input is analyzed.
	commandPrefix = ":"

	quit = "quit"
)

var commands = []prompt.Suggest{
	{Text: ":stages", Description: "stages to print, f.ex. :stages tagged,dep"},
	{Text: ":senses", Description: "sense display mode: all, mfs, none"},
	{Text: ":color", Description: "toggle color"},
	{Text: quit, Description: "leave"},
}

// Handler is an interactive session: every entered line is analyzed and
// its results rendered.
type Handler struct {
	Orchestrator *pipeline.Orchestrator
	Out          io.Writer
}

func NewHandler(o *pipeline.Orchestrator, out io.Writer) *Handler {
	return &Handler{
		Orchestrator: o,
		Out:          out,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprintln(h.Out, "🔑 Ctrl+S: next sense mode, Ctrl+X: toggle color, :stages tagged,parsed,dep, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      ✍  ", h.completer,
			prompt.OptionTitle("arbre"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlS,
				Fn: func(buf *prompt.Buffer) {
					h.Orchestrator.Renderer.NextSenseMode()
					fmt.Fprintln(h.Out, "Senses set to: "+string(h.Orchestrator.Renderer.Senses))
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.toggleColor()
				}}),
		)

		in = strings.TrimSpace(in)
		if in == quit {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		history = append(history, in)

		if strings.HasPrefix(in, commandPrefix) {
			if err := h.command(in); err != nil {
				fmt.Fprintf(h.Out, "❌ %s\n", err)
			}
			continue
		}

		err := h.Orchestrator.Line(ctx, in)
		if err == nil {
			continue
		}

		var aerr *pipeline.AnalyzerError
		if errors.As(err, &aerr) {
			fmt.Fprintf(h.Out, "❌ %s\n", aerr.Msg)
			continue
		}

		return err
	}
}

// command applies a session command to the orchestrator.
func (h *Handler) command(in string) error {
	fields := strings.Fields(in)

	switch fields[0] {
	case ":stages":
		if len(fields) != 2 {
			return errors.New("usage: :stages tagged,parsed,dep")
		}

		stages := []render.Stage{}
		for _, name := range strings.Split(fields[1], ",") {
			st, err := render.ParseStage(name)
			if err != nil {
				return err
			}
			stages = append(stages, st)
		}

		h.Orchestrator.Stages = stages
		return nil

	case ":senses":
		if len(fields) != 2 {
			return errors.New("usage: :senses all|mfs|none")
		}

		mode, err := render.ParseSenseMode(fields[1])
		if err != nil {
			return err
		}

		h.Orchestrator.Renderer.Senses = mode
		return nil

	case ":color":
		h.toggleColor()
		return nil
	}

	return fmt.Errorf("unknown command %s", fields[0])
}

func (h *Handler) toggleColor() {
	r := h.Orchestrator.Renderer
	r.HasColor = !r.HasColor
	fmt.Fprintf(h.Out, "Color set to %t\n", r.HasColor)
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return suggest(in.TextBeforeCursor())
}

// suggest completes session commands and their arguments. Text to analyze
// gets no suggestions.
func suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	if len(tokens) == 1 {
		return prompt.FilterHasPrefix(commands, tokens[0], false)
	}

	if len(tokens) != 2 {
		return s
	}

	last := tokens[1]
	switch tokens[0] {
	case ":stages":
		// complete the last stage of the comma separated list
		done := ""
		if i := strings.LastIndex(last, ","); i >= 0 {
			done, last = last[:i+1], last[i+1:]
		}

		for _, st := range render.Stages() {
			if strings.HasPrefix(st.String(), last) {
				s = append(s, prompt.Suggest{Text: done + st.String(), Description: st.Banner()})
			}
		}

	case ":senses":
		for _, m := range render.SupportedSenseModes() {
			if strings.HasPrefix(string(m), last) {
				s = append(s, prompt.Suggest{Text: string(m)})
			}
		}
	}

	return s
}
