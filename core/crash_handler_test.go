package core

import (
	"bytes"
	"strings"
	"testing"
)

type fakeTerm struct{ finied int }

func (f *fakeTerm) Fini() { f.finied++ }

func stubCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	oldOut, oldExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, crashExit = oldOut, oldExit
		SetCrashTerminal(nil)
	})
	return &buf, &code
}

func TestHandleCrash_RestoresTerminalOnce(t *testing.T) {
	buf, code := stubCrash(t)
	term := &fakeTerm{}
	SetCrashTerminal(term)

	HandleCrash("boom")
	HandleCrash("again")

	if term.finied != 1 {
		t.Errorf("expected terminal finalized once, got %d", term.finied)
	}
	if *code != 1 {
		t.Errorf("expected exit code 1, got %d", *code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("missing crash banner: %q", buf.String())
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	buf, code := stubCrash(t)
	HandleCrash(nil)
	if *code != -1 || buf.Len() != 0 {
		t.Errorf("nil recover value must not report")
	}
}

func TestGo_RecoversPanic(t *testing.T) {
	_, code := stubCrash(t)
	done := make(chan struct{})
	crashExit = func(c int) {
		*code = c
		close(done)
	}

	Go(func() { panic("worker") })
	<-done

	if *code != 1 {
		t.Errorf("expected exit 1 from recovered goroutine, got %d", *code)
	}
}
