package clog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfofWritesPlainPrefixWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf, std: log.New(&buf, "", 0), color: false}
	l.Infof("hello %s", "world")
	if !strings.Contains(buf.String(), "[INFO] hello world") {
		t.Fatalf("output = %q, want it to contain %q", buf.String(), "[INFO] hello world")
	}
}

func TestWarnfWritesPlainPrefixWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf, std: log.New(&buf, "", 0), color: false}
	l.Warnf("disk at %d%%", 90)
	if !strings.Contains(buf.String(), "[WARN] disk at 90%") {
		t.Fatalf("output = %q, want it to contain %q", buf.String(), "[WARN] disk at 90%")
	}
}
