package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// logTimeFormat renders timestamps as HH:MM:SS.cc.
const logTimeFormat = "15:04:05.00"

// newLogger returns a timestamped logger writing to w at level, with keys
// tinted in the diagram's stroke colour.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
	styles := log.DefaultStyles()
	styles.Timestamp = StyleDim
	styles.Key = lipgloss.NewStyle().Foreground(colorStroke)
	l.SetStyles(styles)
	return l
}

// progress measures one CLI operation. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time, rounded to the
// millisecond, appended as the "took" key.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}
