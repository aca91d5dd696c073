package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer assert.NoError(t, os.Unsetenv("APP_ENV"))
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerTo("orders", &buf)
	l.Infof("processed")
	out := buf.String()
	if !strings.Contains(out, `"component":"orders"`) {
		t.Fatalf("missing component field: %s", out)
	}
	if !strings.Contains(out, "processed") {
		t.Fatalf("missing message: %s", out)
	}
}

func TestRecorderCaptures(t *testing.T) {
	r := NewRecorder()
	r.Infof("order %s done", "o1")
	r.Debugw("detail", map[string]any{"id": "o1"})
	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries got %d", len(entries))
	}
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "order o1 done", entries[0].Message)
	assert.Equal(t, "o1", entries[1].Fields["id"])
}
