package output

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestPrinter_Document(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "adds trailing newline", doc: "✗ #1: Fix bug", want: "✗ #1: Fix bug\n"},
		{name: "keeps existing newline", doc: "line\n", want: "line\n"},
		{name: "empty document", doc: "", want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf, false, false).Document(tt.doc)
			if buf.String() != tt.want {
				t.Errorf("Document() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewUserError("no issues to report"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != "no issues to report" {
		t.Errorf("error = %v, want %q", result["error"], "no issues to report")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_ErrorGoesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

	printer.Error(NewSystemError("gh not found"))

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if got := stderr.String(); got != "Error: gh not found\n" {
		t.Errorf("stderr = %q, want %q", got, "Error: gh not found\n")
	}
}

func TestPrinter_Human_PlainError(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Error(errString("boom"))

	if got := buf.String(); got != "Error: boom\n" {
		t.Errorf("output = %q, want %q", got, "Error: boom\n")
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestPrinter_Warn(t *testing.T) {
	t.Run("human", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		NewPrinter(&stdout, false, false).WithStderr(&stderr).Warn("--wrap is ignored when --crop is set")

		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
		if !strings.Contains(stderr.String(), "Warning: --wrap is ignored") {
			t.Errorf("stderr = %q, want warning", stderr.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf, true, false).Warn("dirty %s", "config")

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
		}
		if result["warning"] != "dirty config" {
			t.Errorf("warning = %v, want %q", result["warning"], "dirty config")
		}
	})
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"REPORT", "DESCRIPTION"}, [][]string{
		{"list", "every issue"},
		{"milestone-label", "by milestone, then label"},
	})

	want := "REPORT           DESCRIPTION\n" +
		"list             every issue\n" +
		"milestone-label  by milestone, then label\n"
	if buf.String() != want {
		t.Errorf("Table() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestPrinter_TableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Table(nil, [][]string{{"x"}})
	if buf.Len() != 0 {
		t.Errorf("Table(nil) wrote %q, want nothing", buf.String())
	}
}

func TestPrinter_SectionAndKeyValue(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

	printer.Section("gh command")
	printer.KeyValue("state", "open")

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	want := "gh command\n──────────\nstate: open\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestPrinter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	if err := printer.WriteJSON(map[string]any{"issue_count": 2}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if got := buf.String(); got != "{\n  \"issue_count\": 2\n}\n" {
		t.Errorf("WriteJSON() = %q", got)
	}
}

func TestPrinter_PrintAndPrintln(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Hello, %s!", "world")
	printer.Println()

	if buf.String() != "Hello, world!\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello, world!\n")
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer
	if !NewPrinter(&buf, true, false).IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}
	if NewPrinter(&buf, false, false).IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelWarn},
		{in: "verbose", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Warn("shown", "report", "label")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "report=label") {
		t.Errorf("warn message missing: %q", out)
	}
}
