package loop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asshpong/internal/round"
)

func TestBellListenerRings(t *testing.T) {
	var buf bytes.Buffer
	l := bellListener{w: &buf}

	l.OnBounce()
	l.OnScore(round.SideLeft)

	if got := buf.String(); got != "\a\a" {
		t.Fatalf("output = %q, want two bells", got)
	}
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	l := LogListener{Logger: log.New(&buf)}

	l.OnBounce()
	l.OnScore(round.SideRight)

	out := buf.String()
	if strings.Contains(out, "bounce") {
		t.Fatalf("bounce should only log at debug level, got %q", out)
	}
	if !strings.Contains(out, "point scored") || !strings.Contains(out, "scorer=right") {
		t.Fatalf("output = %q, want point scored by right", out)
	}
}
