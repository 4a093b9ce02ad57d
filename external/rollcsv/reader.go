package rollcsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/foxseedlab/rollalign/internal/diceroll"
	"github.com/foxseedlab/rollalign/internal/timestamp"
)

var ErrMissingColumn = errors.New("dice roll export is missing a column")

// Columns names the header cells the reader looks for.
type Columns struct {
	Time  string
	Type  string
	Value string
}

func DefaultColumns() Columns {
	return Columns{Time: "Time", Type: "Type of Roll", Value: "Total Value"}
}

type FileReader struct {
	columns Columns
}

func NewFileReader(columns Columns) diceroll.Loader {
	return &FileReader{columns: columns}
}

func (r *FileReader) Load(ctx context.Context, path string, offset timestamp.Timestamp) ([]diceroll.DiceRoll, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dice roll export: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	rolls, skipped, err := Parse(ctx, f, r.columns, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("dice rolls loaded", "path", path, "rolls", len(rolls), "skipped_rows", skipped, "offset", offset.String())
	return rolls, nil
}

// Parse reads a dice roll export with a header row. Rows without a recognizable timestamp,
// rows that would land before 00:00:00 after the offset, and rows whose value is neither a
// number nor Nat1/Nat20 are skipped and counted.
func Parse(ctx context.Context, r io.Reader, columns Columns, offset timestamp.Timestamp) ([]diceroll.DiceRoll, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("%w: export is empty", ErrMissingColumn)
		}
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}
	idx, err := locateColumns(header, columns)
	if err != nil {
		return nil, 0, err
	}

	var rolls []diceroll.DiceRoll
	skipped := 0
	row := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		roll, err := parseRow(record, idx, offset)
		if err != nil {
			skipped++
			slog.Debug("skipping dice roll row", "row", row, "reason", err)
			continue
		}
		rolls = append(rolls, roll)
	}
	return rolls, skipped, nil
}

type columnIndex struct {
	time, rollType, value int
}

func locateColumns(header []string, columns Columns) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}
	lookup := func(name string) (int, error) {
		i, ok := positions[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var idx columnIndex
	var err error
	if idx.time, err = lookup(columns.Time); err != nil {
		return columnIndex{}, err
	}
	if idx.rollType, err = lookup(columns.Type); err != nil {
		return columnIndex{}, err
	}
	if idx.value, err = lookup(columns.Value); err != nil {
		return columnIndex{}, err
	}
	return idx, nil
}

func parseRow(record []string, idx columnIndex, offset timestamp.Timestamp) (diceroll.DiceRoll, error) {
	cell := func(i int) string {
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	at, err := diceroll.ExtractTimestamp(cell(idx.time))
	if err != nil {
		return diceroll.DiceRoll{}, err
	}
	at, err = at.SubTimestamp(offset)
	if err != nil {
		return diceroll.DiceRoll{}, fmt.Errorf("offset %s: %w", offset, err)
	}
	value, critical, err := diceroll.ParseValue(cell(idx.value))
	if err != nil {
		return diceroll.DiceRoll{}, err
	}
	return diceroll.DiceRoll{
		Timestamp: at,
		RollType:  cell(idx.rollType),
		Value:     value,
		Critical:  critical,
	}, nil
}
