package diceroll

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/foxseedlab/rollalign/internal/timestamp"
)

const (
	naturalTwenty = "Nat20"
	naturalOne    = "Nat1"
)

var (
	ErrNoTimestamp      = errors.New("no HH:MM:SS timestamp found")
	ErrUnparseableValue = errors.New("roll value is not a number")
)

var timePattern = regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)

// DiceRoll is one recorded roll. Timestamp has the session offset already subtracted.
type DiceRoll struct {
	Timestamp timestamp.Timestamp
	RollType  string
	Value     int
	// Critical is set for natural 1s and natural 20s only.
	Critical bool
}

// Loader reads rolls ordered by Timestamp, subtracting offset from each one.
// Rows that cannot be interpreted are skipped, not reported.
type Loader interface {
	Load(ctx context.Context, path string, offset timestamp.Timestamp) ([]DiceRoll, error)
}

// ParseValue interprets a "Total Value" cell.
func ParseValue(s string) (value int, critical bool, err error) {
	s = strings.TrimSpace(s)
	switch s {
	case naturalTwenty:
		return 20, true, nil
	case naturalOne:
		return 1, true, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrUnparseableValue, s)
	}
	return v, false, nil
}

// ExtractTimestamp finds the first HH:MM:SS substring in s, e.g. "Ep. 12 @ 01:02:03".
func ExtractTimestamp(s string) (timestamp.Timestamp, error) {
	match := timePattern.FindString(s)
	if match == "" {
		return timestamp.Timestamp{}, fmt.Errorf("%w: %q", ErrNoTimestamp, s)
	}
	return timestamp.Parse(match)
}
