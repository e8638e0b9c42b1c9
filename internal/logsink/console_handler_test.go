package logsink

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"logrelay/internal/logging"
)

func TestConsoleFormatHeaderFieldsAndStack(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Level: "debug", SessionID: "run-9", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	sink := NewSink(logger, nil)

	stack := &logging.StackTrace{Frames: []logging.Frame{
		{Function: "main.run", File: "/src/main.go", Line: 12},
		{Function: "main.main", File: "/src/main.go", Line: 4},
	}}
	if err := sink.Handle("net", "WARNING", stack, "retrying", 3); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, session, pid and two frames, got %q", buf.String())
	}
	if !strings.HasSuffix(lines[0], "WARNING [net] – retrying 3") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "    - Session: run-9" {
		t.Errorf("unexpected field line %q", lines[1])
	}
	if lines[2] != "    - PID: "+strconv.Itoa(os.Getpid()) {
		t.Errorf("unexpected pid line %q", lines[2])
	}
	if lines[3] != "    main.run (/src/main.go:12)" || lines[4] != "    main.main (/src/main.go:4)" {
		t.Errorf("unexpected stack lines %q", lines[3:])
	}
}

func TestConsoleFormatRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Level: "error", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	sink := NewSink(logger, nil)
	_ = sink.Handle("db", "WARNING", &logging.StackTrace{}, "slow")
	if buf.Len() != 0 {
		t.Fatalf("expected warning to be filtered, got %q", buf.String())
	}
	_ = sink.Handle("db", "CRITICAL", &logging.StackTrace{Text: "\nmain.run (main.go:1)"}, "")
	out := buf.String()
	if !strings.Contains(out, "CRITICAL [db] – (no message)") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "    main.run (main.go:1)\n") {
		t.Fatalf("expected text stack lines, got %q", out)
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := map[string]string{
		"host":          "Host",
		"retry_count":   "Retry Count",
		"request.id":    "Request Id",
		FieldSessionID:  "Session",
		FieldPID:        "PID",
		"already-dashy": "Already Dashy",
	}
	for key, want := range tests {
		if got := displayLabel(key); got != want {
			t.Errorf("displayLabel(%q) = %q, want %q", key, got, want)
		}
	}
}
