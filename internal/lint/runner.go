package lint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Separator closes each file's block in the report.
const Separator = "---------------"

// Failure records an invocation that did not exit cleanly.
type Failure struct {
	File     string `json:"file"`
	ExitCode int    `json:"exit_code"`
	Err      string `json:"error,omitempty"`
}

// Summary describes a completed run. It is diagnostic only: the report
// written to the output stream does not depend on it.
type Summary struct {
	Files    int       `json:"files"`
	Warnings int       `json:"warnings"`
	Failures []Failure `json:"failures,omitempty"`
}

// Runner invokes the analysis tool for each file and writes the warning report.
type Runner struct {
	inv    Invoker
	out    io.Writer
	logger *slog.Logger
}

// NewRunner creates a Runner that writes its report to out.
func NewRunner(inv Invoker, out io.Writer) *Runner {
	return &Runner{
		inv:    inv,
		out:    out,
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used for per-file diagnostics.
func (r *Runner) SetLogger(l *slog.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Run processes files strictly in order. Tool failures never stop the run:
// whatever output was captured is filtered like any other. Run returns an
// error only if writing the report fails or ctx is cancelled between files.
func (r *Runner) Run(ctx context.Context, files []string, checks []string) (Summary, error) {
	var sum Summary
	w := &reportWriter{w: r.out}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		w.line(strings.ToUpper(file))

		inv, err := r.inv.Invoke(ctx, file, checks)
		if err != nil || inv.ExitCode != 0 {
			f := Failure{File: file, ExitCode: inv.ExitCode}
			if err != nil {
				f.Err = err.Error()
			}
			sum.Failures = append(sum.Failures, f)
			r.logger.Debug("tool invocation failed", "file", file, "exit_code", inv.ExitCode, "error", err)
		}

		warnings := FilterWarnings(inv.Output)
		for _, warning := range warnings {
			w.line(warning)
			w.line("")
			w.line("")
		}
		w.line(Separator)
		w.line("")

		if w.err != nil {
			return sum, fmt.Errorf("write report: %w", w.err)
		}

		sum.Files++
		sum.Warnings += len(warnings)
		r.logger.Info("linted file", "file", file, "warnings", len(warnings))
	}

	return sum, nil
}

// reportWriter keeps the first write error so callers check once per block.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) line(s string) {
	if rw.err != nil {
		return
	}
	_, rw.err = io.WriteString(rw.w, s+"\n")
}
