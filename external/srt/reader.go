package srt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/foxseedlab/rollalign/internal/timestamp"
	"github.com/foxseedlab/rollalign/internal/transcript"
)

const (
	timingSeparator = " --> "
	byteOrderMark   = "\ufeff"
	maxLineBytes    = 1024 * 1024
)

var ErrMalformedBlock = errors.New("malformed subtitle block")

type FileReader struct{}

func NewFileReader() transcript.Loader {
	return &FileReader{}
}

func (r *FileReader) Load(ctx context.Context, path string) ([]transcript.Caption, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	captions, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("transcript loaded", "path", path, "captions", len(captions))
	return captions, nil
}

// Parse reads numbered subtitle blocks:
//
//	1
//	00:00:01,000 --> 00:00:04,000
//	first line
//	second line
//
// A block opens on a line equal to the next expected index. Every later non-empty line up to
// the next index is appended to the caption text with a single space.
func Parse(ctx context.Context, r io.Reader) ([]transcript.Caption, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		return strings.TrimSpace(line), true
	}

	var captions []transcript.Caption
	index := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, ok := next()
		if !ok {
			break
		}
		if line == strconv.Itoa(index) {
			timing, ok := next()
			if !ok {
				return nil, fmt.Errorf("%w: line %d: transcript ends after index %d", ErrMalformedBlock, lineNo, index)
			}
			start, end, err := parseTiming(timing)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedBlock, lineNo, err)
			}
			text, _ := next()
			captions = append(captions, transcript.Caption{Index: index, Start: start, End: end, Text: text})
			index++
			continue
		}
		if line == "" {
			continue
		}
		if len(captions) == 0 {
			slog.Debug("ignoring text before first subtitle block", "line", lineNo)
			continue
		}
		last := &captions[len(captions)-1]
		if last.Text == "" {
			last.Text = line
		} else {
			last.Text += " " + line
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return captions, nil
}

func parseTiming(line string) (timestamp.Timestamp, timestamp.Timestamp, error) {
	startText, endText, ok := strings.Cut(line, timingSeparator)
	if !ok {
		return timestamp.Timestamp{}, timestamp.Timestamp{}, fmt.Errorf("expected %q in timing line %q", strings.TrimSpace(timingSeparator), line)
	}
	start, err := timestamp.Parse(startText)
	if err != nil {
		return timestamp.Timestamp{}, timestamp.Timestamp{}, err
	}
	end, err := timestamp.Parse(endText)
	if err != nil {
		return timestamp.Timestamp{}, timestamp.Timestamp{}, err
	}
	return start, end, nil
}
