package instance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses one machine per line, one integer processing time per cell.
// Blank lines are skipped and cells are trimmed. The result is validated by New.
func ReadCSV(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported by New, not the reader
	cr.TrimLeadingSpace = true

	var rows [][]int64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line, err)
		}
		row := make([]int64, 0, len(rec))
		for col, cell := range rec {
			v, perr := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrParse, line, col+1, cell)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// WriteCSV writes p in the format accepted by ReadCSV.
func WriteCSV(w io.Writer, p *Matrix) error {
	cw := csv.NewWriter(w)
	rec := make([]string, p.Jobs())
	for i := 0; i < p.Machines(); i++ {
		for j := range rec {
			rec[j] = strconv.FormatInt(p.At(i, j), 10)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("instance: WriteCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
