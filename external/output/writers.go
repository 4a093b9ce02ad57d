package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/foxseedlab/rollalign/internal/align"
	"github.com/foxseedlab/rollalign/internal/config"
	"github.com/foxseedlab/rollalign/internal/output"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format")

func NewWriter(w io.Writer, format string) (output.Writer, error) {
	switch format {
	case config.OutputFormatJSONL:
		return NewJSONLinesWriter(w), nil
	case config.OutputFormatJSON:
		return NewJSONArrayWriter(w), nil
	case config.OutputFormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type JSONLinesWriter struct {
	enc *json.Encoder
}

func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLinesWriter{enc: enc}
}

func (w *JSONLinesWriter) Write(a align.Annotation) error {
	return w.enc.Encode(a)
}

func (w *JSONLinesWriter) Close() error {
	return nil
}

// JSONArrayWriter writes one array element per annotation as it arrives, so the full
// result never has to be held in memory.
type JSONArrayWriter struct {
	w     io.Writer
	count int
}

func NewJSONArrayWriter(w io.Writer) *JSONArrayWriter {
	return &JSONArrayWriter{w: w}
}

func (w *JSONArrayWriter) Write(a align.Annotation) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	prefix := ",\n  "
	if w.count == 0 {
		prefix = "[\n  "
	}
	if _, err := io.WriteString(w.w, prefix); err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	w.count++
	return nil
}

func (w *JSONArrayWriter) Close() error {
	closing := "\n]\n"
	if w.count == 0 {
		closing = "[]\n"
	}
	_, err := io.WriteString(w.w, closing)
	return err
}

// YAMLWriter emits one YAML document per annotation.
type YAMLWriter struct {
	enc *yaml.Encoder
}

func NewYAMLWriter(w io.Writer) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLWriter{enc: enc}
}

func (w *YAMLWriter) Write(a align.Annotation) error {
	return w.enc.Encode(a)
}

func (w *YAMLWriter) Close() error {
	return w.enc.Close()
}
