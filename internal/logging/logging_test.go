package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func newBufferLogger(component string) (*StdoutLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := NewStdoutLogger(component)
	l.out = buf
	return l, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestStdoutLogger_EmitsJSONLine(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger("test")

	l.Info("hello", Field{Key: "k", Value: "v"})

	entry := decodeLine(t, buf)
	if entry["level"] != "info" || entry["msg"] != "hello" || entry["component"] != "test" {
		t.Errorf("unexpected entry: %v", entry)
	}
	fields, _ := entry["fields"].(map[string]any)
	if fields["k"] != "v" {
		t.Errorf("expected field k=v, got %v", fields)
	}
}

func TestStdoutLogger_WithPersistentFields(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger("parent")

	child := l.With(Field{Key: "request_id", Value: "abc"})
	child.Warn("slow upstream")

	entry := decodeLine(t, buf)
	fields, _ := entry["fields"].(map[string]any)
	if fields["request_id"] != "abc" {
		t.Errorf("expected persistent field on child entries, got %v", fields)
	}
}

func TestStdoutLogger_WithComponentOverride(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger("parent")

	child := l.With(Field{Key: "component", Value: "storefront"})
	child.Info("scoped")

	entry := decodeLine(t, buf)
	if entry["component"] != "storefront" {
		t.Errorf("expected component override, got %v", entry["component"])
	}
}
