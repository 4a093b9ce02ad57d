package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

var (
	ErrOutOfRange = errors.New("timestamp component out of range")
	ErrMalformed  = errors.New("malformed timestamp")
	ErrNegative   = errors.New("timestamp would be before 00:00:00")
)

// Timestamp is a point in time at second granularity. The zero value is 00:00:00.
type Timestamp struct {
	hour   int
	minute int
	second int
}

func New(hour, minute, second int) (Timestamp, error) {
	if second < 0 || second >= 60 {
		return Timestamp{}, fmt.Errorf("%w: second=%d", ErrOutOfRange, second)
	}
	if minute < 0 || minute >= 60 {
		return Timestamp{}, fmt.Errorf("%w: minute=%d", ErrOutOfRange, minute)
	}
	if hour < 0 {
		return Timestamp{}, fmt.Errorf("%w: hour=%d", ErrOutOfRange, hour)
	}
	return Timestamp{hour: hour, minute: minute, second: second}, nil
}

func FromSeconds(total int) (Timestamp, error) {
	if total < 0 {
		return Timestamp{}, fmt.Errorf("%w: %d seconds", ErrNegative, total)
	}
	return Timestamp{
		hour:   total / secondsPerHour,
		minute: (total % secondsPerHour) / secondsPerMinute,
		second: total % secondsPerMinute,
	}, nil
}

// Parse reads "HH:MM:SS". A ",fff" suffix on the seconds field is accepted and dropped so
// subtitle timestamps such as "00:01:02,500" parse as well.
func Parse(s string) (Timestamp, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	secondField, _, _ := strings.Cut(parts[2], ",")
	fields := [3]string{parts[0], parts[1], secondField}
	var values [3]int
	for i, f := range fields {
		if f == "" || strings.ContainsAny(f, "+-") {
			return Timestamp{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return Timestamp{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		values[i] = v
	}
	return New(values[0], values[1], values[2])
}

func (t Timestamp) Hour() int   { return t.hour }
func (t Timestamp) Minute() int { return t.minute }
func (t Timestamp) Second() int { return t.second }

// Seconds returns the linearized value hour*3600 + minute*60 + second.
func (t Timestamp) Seconds() int {
	return t.hour*secondsPerHour + t.minute*secondsPerMinute + t.second
}

func (t Timestamp) Compare(u Timestamp) int {
	a, b := t.Seconds(), u.Seconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t Timestamp) Before(u Timestamp) bool { return t.Seconds() < u.Seconds() }
func (t Timestamp) After(u Timestamp) bool  { return t.Seconds() > u.Seconds() }
func (t Timestamp) Equal(u Timestamp) bool  { return t.Seconds() == u.Seconds() }

func (t Timestamp) Add(seconds int) (Timestamp, error) {
	return carry(t.hour, t.minute, t.second+seconds)
}

func (t Timestamp) Sub(seconds int) (Timestamp, error) {
	return carry(t.hour, t.minute, t.second-seconds)
}

// AddTimestamp adds u component-wise. Both operands are non-negative, so the sum is too.
func (t Timestamp) AddTimestamp(u Timestamp) Timestamp {
	sum, _ := carry(t.hour+u.hour, t.minute+u.minute, t.second+u.second)
	return sum
}

func (t Timestamp) SubTimestamp(u Timestamp) (Timestamp, error) {
	return carry(t.hour-u.hour, t.minute-u.minute, t.second-u.second)
}

// carry normalizes second and minute into [0,60) with floor division, moving the remainder
// into the next field up, and rejects a negative hour.
func carry(hour, minute, second int) (Timestamp, error) {
	rem, second := floorDivMod(second, 60)
	minute += rem
	rem, minute = floorDivMod(minute, 60)
	hour += rem
	if hour < 0 {
		return Timestamp{}, ErrNegative
	}
	return Timestamp{hour: hour, minute: minute, second: second}, nil
}

func floorDivMod(a, b int) (int, int) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
