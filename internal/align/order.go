package align

import (
	"errors"
	"fmt"

	"github.com/foxseedlab/rollalign/internal/diceroll"
	"github.com/foxseedlab/rollalign/internal/transcript"
)

var (
	ErrCaptionsUnordered = errors.New("captions are not ordered by start time")
	ErrRollsUnordered    = errors.New("dice rolls are not ordered by timestamp")
)

// CheckOrder reports the first place where either input goes back in time.
// The aligner itself never checks; out-of-order input silently drops captions.
func CheckOrder(captions []transcript.Caption, rolls []diceroll.DiceRoll) error {
	for i := 1; i < len(captions); i++ {
		if captions[i].Start.Before(captions[i-1].Start) {
			return fmt.Errorf("%w: caption %d starts at %s after caption %d at %s",
				ErrCaptionsUnordered, captions[i].Index, captions[i].Start, captions[i-1].Index, captions[i-1].Start)
		}
	}
	for i := 1; i < len(rolls); i++ {
		if rolls[i].Timestamp.Before(rolls[i-1].Timestamp) {
			return fmt.Errorf("%w: roll #%d at %s follows roll #%d at %s",
				ErrRollsUnordered, i+1, rolls[i].Timestamp, i, rolls[i-1].Timestamp)
		}
	}
	return nil
}
