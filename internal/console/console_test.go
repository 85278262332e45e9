package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func newBufferedLogger() (*ConsoleLogger, *bytes.Buffer) {
	logger := &ConsoleLogger{}
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	return logger, buf
}

func TestDebug(t *testing.T) {
	t.Run("suppressed at level zero", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		logger.Debug("hidden %d", 1)
		if buf.Len() != 0 {
			t.Fatalf("unexpected output: %q", buf.String())
		}
	})

	t.Run("written when the level is raised", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		logger.DebugLevel = 1
		logger.Debug("loaded %d modules", 3)
		if !strings.Contains(buf.String(), "DEBUG: loaded 3 modules") {
			t.Fatalf("unexpected output: %q", buf.String())
		}
	})
}

func TestInfo(t *testing.T) {
	logger, buf := newBufferedLogger()
	logger.Info("generated %s report", "demo")
	if !strings.Contains(buf.String(), "generated demo report") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestError(t *testing.T) {
	logger, buf := newBufferedLogger()
	logger.Error("missing dependency: %s", "np")
	if !strings.Contains(buf.String(), "ERROR: missing dependency: np") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestPrintfDelegatesToDebug(t *testing.T) {
	logger, buf := newBufferedLogger()
	logger.Printf("quiet %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	logger.DebugLevel = 1
	logger.Printf("loud %d", 2)
	if !strings.Contains(buf.String(), "DEBUG: loud 2") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestSetOutputDiscards(t *testing.T) {
	logger, buf := newBufferedLogger()
	logger.SetOutput(io.Discard)
	logger.Info("silenced")
	logger.Error("silenced")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
