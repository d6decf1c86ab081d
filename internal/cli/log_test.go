package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level log.Level
		log   func(*log.Logger)
		want  bool
	}{
		{log.InfoLevel, func(l *log.Logger) { l.Info("msg") }, true},
		{log.InfoLevel, func(l *log.Logger) { l.Debug("msg") }, false},
		{log.DebugLevel, func(l *log.Logger) { l.Debug("msg") }, true},
		{log.WarnLevel, func(l *log.Logger) { l.Info("msg") }, false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		tt.log(newLogger(&buf, tt.level))
		if got := strings.Contains(buf.String(), "msg"); got != tt.want {
			t.Errorf("level %v: logged = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug message logged at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug message missing after SetLogLevel(LogDebug)")
	}
}

func TestVerboseFlag(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetOut(new(strings.Builder))
	root.SetArgs([]string{"-v", "completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level after -v = %v, want debug", c.Logger.GetLevel())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("render finished", "nodes", 3)

	out := buf.String()
	for _, want := range []string{"render finished", "nodes", "took"} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output missing %q: %s", want, out)
		}
	}
}
