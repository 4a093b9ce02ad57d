package diceroll

import (
	"errors"
	"testing"

	"github.com/foxseedlab/rollalign/internal/timestamp"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in           string
		wantValue    int
		wantCritical bool
	}{
		{in: "Nat20", wantValue: 20, wantCritical: true},
		{in: "Nat1", wantValue: 1, wantCritical: true},
		{in: "15", wantValue: 15, wantCritical: false},
		{in: " 7 ", wantValue: 7, wantCritical: false},
		{in: "20", wantValue: 20, wantCritical: false},
		{in: "-2", wantValue: -2, wantCritical: false},
	}
	for _, tc := range cases {
		value, critical, err := ParseValue(tc.in)
		if err != nil {
			t.Fatalf("ParseValue(%q): unexpected error %v", tc.in, err)
		}
		if value != tc.wantValue || critical != tc.wantCritical {
			t.Fatalf("ParseValue(%q) = (%d, %v), want (%d, %v)", tc.in, value, critical, tc.wantValue, tc.wantCritical)
		}
	}
}

func TestParseValue_Unparseable(t *testing.T) {
	for _, in := range []string{"", "Unknown", "12+3", "nat20"} {
		if _, _, err := ParseValue(in); !errors.Is(err, ErrUnparseableValue) {
			t.Fatalf("ParseValue(%q): expected ErrUnparseableValue, got %v", in, err)
		}
	}
}

func TestExtractTimestamp(t *testing.T) {
	got, err := ExtractTimestamp("C2E001 01:02:03 (approx)")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want, _ := timestamp.New(1, 2, 3)
	if !got.Equal(want) {
		t.Fatalf("unexpected timestamp: %s", got)
	}
}

func TestExtractTimestamp_Missing(t *testing.T) {
	if _, err := ExtractTimestamp("1:02:03"); !errors.Is(err, ErrNoTimestamp) {
		t.Fatalf("expected ErrNoTimestamp, got %v", err)
	}
}

func TestExtractTimestamp_OutOfRange(t *testing.T) {
	if _, err := ExtractTimestamp("00:75:00"); !errors.Is(err, timestamp.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
