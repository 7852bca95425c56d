package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/revelaction/arbre/analysis"
	"github.com/revelaction/arbre/config"
)

// Request is written to the analyzer process, one JSON object per line.
type Request struct {
	Text    string         `json:"text"`
	Lang    string         `json:"lang"`
	DataDir string         `json:"data_dir,omitempty"`
	Modules config.Modules `json:"modules"`
}

// Response is read from the analyzer process for every Request.
type Response struct {
	Sentences []analysis.Sentence `json:"sentences"`
	Error     string              `json:"error,omitempty"`
}

// Process is an Analyzer backed by a long-lived external command speaking
// JSON lines on its standard input and output.
type Process struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	enc   *json.Encoder
	dec   *json.Decoder

	lang    string
	dataDir string
	modules config.Modules
}

var _ Analyzer = (*Process)(nil)

// StartProcess starts the analyzer command of cfg. The standard error of the
// command is copied to stderr.
func StartProcess(ctx context.Context, cfg config.Config, stderr io.Writer) (*Process, error) {
	if len(cfg.Analyzer) == 0 {
		return nil, errors.New("no analyzer command configured")
	}

	cmd := exec.CommandContext(ctx, cfg.Analyzer[0], cfg.Analyzer[1:]...)
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("analyzer process: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("analyzer process: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start analyzer %q: %w", cfg.Analyzer[0], err)
	}

	return &Process{
		cmd:     cmd,
		stdin:   stdin,
		enc:     json.NewEncoder(stdin),
		dec:     json.NewDecoder(stdout),
		lang:    cfg.Lang,
		dataDir: cfg.DataDir,
		modules: cfg.Modules,
	}, nil
}

// Analyze sends line to the process and waits for its sentences.
func (p *Process) Analyze(ctx context.Context, line string) ([]analysis.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := Request{Text: line, Lang: p.lang, DataDir: p.dataDir, Modules: p.modules}
	if err := p.enc.Encode(req); err != nil {
		return nil, fmt.Errorf("analyzer process: write request: %w", err)
	}

	var resp Response
	if err := p.dec.Decode(&resp); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("analyzer process: read response: %w", err)
	}

	if resp.Error != "" {
		return nil, &AnalyzerError{Line: line, Msg: resp.Error}
	}

	return resp.Sentences, nil
}

// Close ends the input of the process and waits for it to exit.
func (p *Process) Close() error {
	if err := p.stdin.Close(); err != nil {
		return err
	}

	return p.cmd.Wait()
}
