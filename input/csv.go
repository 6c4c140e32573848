package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadSignalCSV reads a two-column "time,ca" CSV file (an optional header
// row is tolerated) into a Signal.
func LoadSignalCSV(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input signal CSV %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var time, ca []float64
	lineNum := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input signal CSV %s: %w", path, err)
		}
		lineNum++

		t, errT := strconv.ParseFloat(record[0], 64)
		c, errC := strconv.ParseFloat(record[1], 64)
		if errT != nil || errC != nil {
			if lineNum == 1 {
				// First row may be a header; skip it silently.
				continue
			}
			return nil, fmt.Errorf("input signal CSV %s line %d: could not parse %q as time,ca", path, lineNum, record)
		}
		time = append(time, t)
		ca = append(ca, c)
	}

	return New(time, ca)
}
