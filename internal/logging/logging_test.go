package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsAndTag(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "SPHERE", false)
	l.Debugf("hidden %d", 1)
	l.Infof("frames=%d", 3)
	l.Errorf("boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked with debug disabled: %q", out)
	}
	if !strings.Contains(out, "[SPHERE] frames=3") {
		t.Fatalf("missing tagged info line: %q", out)
	}
	if !strings.Contains(out, "ERROR [SPHERE] boom") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestWithKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "A", true).With("B")
	l.Debugf("x")
	if !strings.Contains(buf.String(), "DEBUG [B] x") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Infof("nothing")
	l.Debugf("nothing")
	l.Errorf("nothing")
	if l.With("X") != nil {
		t.Fatal("With on nil should stay nil")
	}
}
