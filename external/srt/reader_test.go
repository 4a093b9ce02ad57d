package srt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTranscript = "\ufeff1\n" +
	"00:00:05,120 --> 00:00:08,000\n" +
	"MATT: You see the door\n" +
	"creak open.\n" +
	"\n" +
	"2\n" +
	"00:00:12,000 --> 00:00:14,500\n" +
	"LAURA: I roll for it.\n" +
	"\n" +
	"3\n" +
	"00:01:00,000 --> 00:01:02,000\n" +
	"\n" +
	"late text\n"

func TestParse_Blocks(t *testing.T) {
	captions, err := Parse(context.Background(), strings.NewReader(sampleTranscript))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(captions) != 3 {
		t.Fatalf("unexpected caption count: %d", len(captions))
	}
	first := captions[0]
	if first.Index != 1 || first.Start.String() != "00:00:05" || first.End.String() != "00:00:08" {
		t.Fatalf("unexpected first caption: %+v", first)
	}
	if first.Text != "MATT: You see the door creak open." {
		t.Fatalf("multi-line text not joined: %q", first.Text)
	}
	if captions[1].Text != "LAURA: I roll for it." {
		t.Fatalf("unexpected second caption text: %q", captions[1].Text)
	}
	if captions[2].Text != "late text" {
		t.Fatalf("text after an empty first line should still be kept: %q", captions[2].Text)
	}
}

func TestParse_IgnoresStrayTextBeforeFirstBlock(t *testing.T) {
	input := "WEBVTT-ish header\n\n1\n00:00:01 --> 00:00:02\nhello\n"
	captions, err := Parse(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(captions) != 1 || captions[0].Text != "hello" {
		t.Fatalf("unexpected captions: %+v", captions)
	}
}

func TestParse_NumberInTextIsNotAnIndex(t *testing.T) {
	input := "1\n00:00:01 --> 00:00:02\ncount with me\n3\n"
	captions, err := Parse(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(captions) != 1 || captions[0].Text != "count with me 3" {
		t.Fatalf("unexpected captions: %+v", captions)
	}
}

func TestParse_MalformedTiming(t *testing.T) {
	input := "1\n00:00:01 -> 00:00:02\nhello\n"
	if _, err := Parse(context.Background(), strings.NewReader(input)); !errors.Is(err, ErrMalformedBlock) {
		t.Fatalf("expected ErrMalformedBlock, got %v", err)
	}
}

func TestParse_TruncatedBlock(t *testing.T) {
	if _, err := Parse(context.Background(), strings.NewReader("1\n")); !errors.Is(err, ErrMalformedBlock) {
		t.Fatalf("expected ErrMalformedBlock, got %v", err)
	}
}

func TestParse_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Parse(ctx, strings.NewReader(sampleTranscript)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFileReader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episode.srt")
	if err := os.WriteFile(path, []byte(sampleTranscript), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	captions, err := NewFileReader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(captions) != 3 {
		t.Fatalf("unexpected caption count: %d", len(captions))
	}
}

func TestFileReader_MissingFile(t *testing.T) {
	if _, err := NewFileReader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.srt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
