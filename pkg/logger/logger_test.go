package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInitNormalizesLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"WARN", "warn"},
		{"Error", "error"},
		{"", "info"},
		{"verbose", "info"},
	}
	for _, c := range cases {
		Init(c.in)
		if got := LevelString(); got != c.want {
			t.Fatalf("Init(%q): LevelString() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	orig := logger
	logger = log.New(&buf, "", 0)
	defer func() { logger = orig }()

	Init("warn")
	Debugf("finding hotel %s", "h1")
	Infof("serving request")
	Warnf("mongo slow")
	Errorf("mongo down")

	out := buf.String()
	if strings.Contains(out, "finding hotel") || strings.Contains(out, "serving request") {
		t.Fatalf("debug/info should be suppressed at warn level, got: %q", out)
	}
	if !strings.Contains(out, "mongo slow") || !strings.Contains(out, "mongo down") {
		t.Fatalf("warn/error messages missing: %q", out)
	}
}

func TestPrintlnMapsToInfo(t *testing.T) {
	var buf bytes.Buffer
	orig := logger
	logger = log.New(&buf, "", 0)
	defer func() { logger = orig }()

	Init("warn")
	Println("hola")
	if strings.Contains(buf.String(), "hola") {
		t.Fatalf("Println should be suppressed at warn level")
	}

	Init("info")
	buf.Reset()
	Println("hola")
	if !strings.Contains(buf.String(), "hola") {
		t.Fatalf("Println expected at info level, got: %q", buf.String())
	}
}
