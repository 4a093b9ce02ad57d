// Package align pairs dice rolls with the transcript captions spoken around them.
//
// Both inputs must be ordered by time. Captions are walked with a single cursor that only
// moves forward, so a full run costs O(captions + rolls) and each caption lands in at most
// one annotation: the first roll whose window contains its start.
package align

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/foxseedlab/rollalign/internal/diceroll"
	"github.com/foxseedlab/rollalign/internal/transcript"
)

var ErrNegativeWindow = errors.New("window must be non-negative")

// Annotation is one training example: what was said before a roll, what was said after,
// and the roll itself.
type Annotation struct {
	Context     string `json:"context" yaml:"context"`
	Consequence string `json:"consequence" yaml:"consequence"`
	RollType    string `json:"roll_type" yaml:"roll_type"`
	Value       int    `json:"value" yaml:"value"`
	Critical    bool   `json:"critical" yaml:"critical"`
}

type Stats struct {
	Rolls     int
	Consumed  int
	Discarded int
	Remaining int
}

// Aligner is single-use and must not be shared between goroutines.
type Aligner struct {
	captions []transcript.Caption
	rolls    []diceroll.DiceRoll
	window   int

	cursor   int
	nextRoll int
	stats    Stats
}

func New(captions []transcript.Caption, rolls []diceroll.DiceRoll, window int) (*Aligner, error) {
	if window < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWindow, window)
	}
	return &Aligner{captions: captions, rolls: rolls, window: window}, nil
}

// Next returns the annotation for the next roll, or false once every roll has been emitted.
func (a *Aligner) Next() (Annotation, bool) {
	if a.nextRoll >= len(a.rolls) {
		return Annotation{}, false
	}
	roll := a.rolls[a.nextRoll]
	a.nextRoll++
	a.stats.Rolls++

	at := roll.Timestamp.Seconds()
	begin := at - a.window
	end := at + a.window

	var context, consequence []string
	for a.cursor < len(a.captions) {
		c := a.captions[a.cursor]
		start := c.Start.Seconds()
		if start < begin {
			a.cursor++
			a.stats.Discarded++
			continue
		}
		if start > end {
			// left in place for the next roll
			break
		}
		a.cursor++
		a.stats.Consumed++
		if c.End.Seconds() < at {
			context = append(context, c.Text)
		} else {
			consequence = append(consequence, c.Text)
		}
	}

	return Annotation{
		Context:     strings.Join(context, " "),
		Consequence: strings.Join(consequence, " "),
		RollType:    roll.RollType,
		Value:       roll.Value,
		Critical:    roll.Critical,
	}, true
}

// All yields the remaining annotations in roll order. The sequence shares the aligner's
// cursor, so ranging over it twice does not restart the alignment.
func (a *Aligner) All() iter.Seq[Annotation] {
	return func(yield func(Annotation) bool) {
		for {
			ann, ok := a.Next()
			if !ok || !yield(ann) {
				return
			}
		}
	}
}

func (a *Aligner) Stats() Stats {
	s := a.stats
	s.Remaining = len(a.captions) - a.cursor
	return s
}

// Align runs a full alignment and collects the result.
func Align(captions []transcript.Caption, rolls []diceroll.DiceRoll, window int) ([]Annotation, error) {
	a, err := New(captions, rolls, window)
	if err != nil {
		return nil, err
	}
	out := make([]Annotation, 0, len(rolls))
	for ann := range a.All() {
		out = append(out, ann)
	}
	return out, nil
}
