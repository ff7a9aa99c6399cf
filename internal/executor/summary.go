package executor

import (
	"context"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"

	"github.com/go-runz/runz/internal/ctxlog"
)

// LogSummary emits one structured log line per terminal Job through the
// context's logger, with a colorized status marker matching PrintSummary's
// colorize decision.
func LogSummary(ctx context.Context, jobs []*Job, colorize bool) {
	logger := ctxlog.FromContext(ctx)
	for _, job := range jobs {
		msg := summaryMarker(job.State(), colorize)
		if job.State() == JobDoneErr {
			logger.Error(msg, "task", job.Call.Task.Name, "elapsed", humanize.RelTime(job.StartedAt, job.FinishedAt, "", ""), "error", job.Err)
			continue
		}
		logger.Info(msg, "task", job.Call.Task.Name, "elapsed", humanize.RelTime(job.StartedAt, job.FinishedAt, "", ""))
	}
}

// PrintSummary writes the same one-line-per-Job summary to w as plain
// text, for callers (the cmd/run-z entrypoint) that want a final report on
// stdout independent of the structured log stream. colorize is the
// caller's resolved --color/--no-color/TTY decision, shared with LogSummary
// so both reports agree on whether escape codes are safe to emit.
func PrintSummary(w io.Writer, jobs []*Job, colorize bool) {
	for _, job := range jobs {
		line := summaryMarker(job.State(), colorize) + " " + job.Call.Task.Name +
			" (" + humanize.RelTime(job.StartedAt, job.FinishedAt, "", "") + ")"
		if job.Err != nil {
			line += ": " + job.Err.Error()
		}
		io.WriteString(w, line+"\n")
	}
}

func summaryMarker(state JobState, colorize bool) string {
	ok := state != JobDoneErr
	switch {
	case ok && colorize:
		return color.Green.Sprint("✓")
	case ok:
		return "[ok]"
	case colorize:
		return color.Red.Sprint("✗")
	default:
		return "[fail]"
	}
}
