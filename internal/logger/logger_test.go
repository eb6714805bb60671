package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandler_Structural(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: LevelDebug}
	l := slog.New(NewPrettyHandler(&buf, opts, false))

	t.Run("WithAttrs", func(t *testing.T) {
		buf.Reset()
		l.With("request_id", "abc-123").Info("request sent", "status", 200)

		output := buf.String()
		if !strings.Contains(output, "request_id=abc-123") {
			t.Errorf("output missing persistent attr: %q", output)
		}
		if !strings.Contains(output, "status=200") {
			t.Errorf("output missing record attr: %q", output)
		}
	})

	t.Run("NestedGroups", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("outer").WithGroup("inner").With("model", "gemini").Info("msg")

		if output := buf.String(); !strings.Contains(output, "outer.inner.model=gemini") {
			t.Errorf("output missing nested grouped attr: %q", output)
		}
	})
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelWarn}, false))
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected level filtering: %q", buf.String())
	}
}

func TestRedactAttr(t *testing.T) {
	tests := []struct {
		name   string
		attr   slog.Attr
		redact bool
	}{
		{"api key by name", slog.String("api_key", "whatever"), true},
		{"source text", slog.String("source_text", "private words"), true},
		{"translation", slog.String("translation", "mots privés"), true},
		{"google key by value", slog.String("error", "bad key AIzaSyA1234567890abcdef"), true},
		{"header dump", slog.String("detail", "X-goog-api-key: secret123"), true},
		{"plain", slog.String("model", "gemini-2.5-flash-lite"), false},
		{"number", slog.Int("status", 500), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RedactAttr(nil, tt.attr)
			if (got.Value.String() == redacted) != tt.redact {
				t.Fatalf("RedactAttr(%s) = %q, redact=%v", tt.attr.Key, got.Value.String(), tt.redact)
			}
		})
	}
}

func TestInitWriter_NoColorAndJSONFile(t *testing.T) {
	var console, file bytes.Buffer
	InitWriter(&console, LevelInfo, &file)
	Info("translated", "model", "gemini-2.5-flash-lite", "text", "hello")

	if strings.Contains(console.String(), "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", console.String())
	}
	if strings.Contains(console.String(), "hello") {
		t.Fatalf("console leaked text: %q", console.String())
	}

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(file.Bytes()), &rec); err != nil {
		t.Fatalf("expected JSONL record, got %q: %v", file.String(), err)
	}
	if rec["model"] != "gemini-2.5-flash-lite" || rec["text"] != redacted {
		t.Fatalf("unexpected JSON record: %v", rec)
	}
}
