package transit

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestTracefOnlyInDebugMode(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, "", 0)

	SetDebugMode(false)
	tracef(l, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("logged outside debug mode: %q", buf.String())
	}

	SetDebugMode(true)
	defer SetDebugMode(false)
	tracef(l, "shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestDebugModeTracesTransitions(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	m, d, buf := newTestManager(Config{})
	if err := m.PlayTransition(NewNode("panel"), FadeOptions(0, 1, 0.1, Linear), Intro); err != nil {
		t.Fatal(err)
	}
	d.Update(0.1)
	out := buf.String()
	if !strings.Contains(out, "playing Fade Intro for panel") || !strings.Contains(out, "completed Fade Intro for panel") {
		t.Errorf("trace = %q", out)
	}
}

func TestDebugPanicsOnDisposedAddChild(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	parent := NewNode("parent")
	child := NewNode("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "disposed node") {
			t.Errorf("panic = %v", r)
		}
	}()
	parent.AddChild(child)
}

func TestNoPanicOnDisposedOutsideDebug(t *testing.T) {
	SetDebugMode(false)
	parent := NewNode("parent")
	child := NewNode("child")
	child.Dispose()
	parent.AddChild(child)
}
