package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/foxseedlab/rollalign/internal/align"
	"gopkg.in/yaml.v3"
)

var sampleAnnotations = []align.Annotation{
	{Context: "you swing", Consequence: "it hits <hard>", RollType: "Attack", Value: 20, Critical: true},
	{Context: "", Consequence: "", RollType: "Save", Value: 9, Critical: false},
}

func writeAll(t *testing.T, format string) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, format)
	if err != nil {
		t.Fatalf("failed to create %s writer: %v", format, err)
	}
	for _, a := range sampleAnnotations {
		if err := w.Write(a); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	return buf.String()
}

func TestJSONLinesWriter(t *testing.T) {
	out := writeAll(t, "jsonl")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	for _, key := range []string{"context", "consequence", "roll_type", "value", "critical"} {
		if _, ok := first[key]; !ok {
			t.Fatalf("missing key %q in %s", key, lines[0])
		}
	}
	if len(first) != 5 {
		t.Fatalf("unexpected extra keys: %v", first)
	}
	if !strings.Contains(lines[0], "<hard>") {
		t.Fatalf("html should not be escaped: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"context":""`) {
		t.Fatalf("empty context must be present as an empty string: %s", lines[1])
	}
}

func TestJSONArrayWriter(t *testing.T) {
	out := writeAll(t, "json")
	var got []align.Annotation
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0] != sampleAnnotations[0] || got[1] != sampleAnnotations[1] {
		t.Fatalf("unexpected decoded annotations: %+v", got)
	}
}

func TestJSONArrayWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONArrayWriter(&buf)
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestYAMLWriter(t *testing.T) {
	out := writeAll(t, "yaml")
	dec := yaml.NewDecoder(strings.NewReader(out))
	var got []align.Annotation
	for {
		var a align.Annotation
		if err := dec.Decode(&a); err != nil {
			break
		}
		got = append(got, a)
	}
	if len(got) != 2 || got[0] != sampleAnnotations[0] || got[1] != sampleAnnotations[1] {
		t.Fatalf("unexpected decoded annotations: %+v\n%s", got, out)
	}
	if !strings.Contains(out, "roll_type: Attack") {
		t.Fatalf("expected snake_case keys: %s", out)
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "csv"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
