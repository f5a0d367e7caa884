package logging

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(verbose bool) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOutput(&out, &errOut, verbose), &out, &errOut
}

func TestLogger_Levels(t *testing.T) {
	l, out, errOut := newTestLogger(false)

	l.Info("processing %d files", 3)
	l.Success("done")
	l.Warn("nothing found")
	l.Error("decode failed: %s", "a.jpg")

	stdout := out.String()
	for _, want := range []string{"[INFO] processing 3 files", "[SUCCESS] done", "[WARN] nothing found"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q, got:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "ERROR") {
		t.Error("errors should not go to stdout")
	}
	if !strings.Contains(errOut.String(), "[ERROR] decode failed: a.jpg") {
		t.Errorf("stderr missing error line, got:\n%s", errOut.String())
	}
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	l, out, _ := newTestLogger(false)
	l.Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("debug line emitted without verbose: %q", out.String())
	}

	l, out, _ = newTestLogger(true)
	l.Debug("shown")
	if !strings.Contains(out.String(), "[DEBUG] shown") {
		t.Errorf("verbose debug line missing, got: %q", out.String())
	}
}

func TestLogger_NoColorDisablesANSI(t *testing.T) {
	l, out, _ := newTestLogger(false)
	l.Info("plain")
	if strings.Contains(out.String(), "\033[") {
		t.Errorf("found ANSI escape in no-color output: %q", out.String())
	}
}

func TestLogger_ColorStateIsPerInstance(t *testing.T) {
	var coloredOut, plainOut bytes.Buffer
	colored := &Logger{out: &coloredOut, errOut: &coloredOut, pal: colorPalette}
	plain := NewWithOutput(&plainOut, &plainOut, false)

	colored.Info("tinted")
	plain.Info("plain")

	if !strings.Contains(coloredOut.String(), "\033[") {
		t.Errorf("colored logger emitted no ANSI escapes: %q", coloredOut.String())
	}
	if strings.Contains(plainOut.String(), "\033[") {
		t.Errorf("plain logger picked up another instance's colors: %q", plainOut.String())
	}
}
