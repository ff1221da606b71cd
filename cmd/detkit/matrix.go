package main

import (
	"fmt"
	"strconv"
	"strings"
)

// maxExtent is the largest matrix the CLI instantiates (tensor.D8).
const maxExtent = 8

// parseMatrix parses "a,b;c,d" into row-major data and its extent.
func parseMatrix(s string) ([]float64, int, error) {
	rows := strings.Split(strings.TrimSpace(s), ";")
	n := len(rows)
	if n > maxExtent {
		return nil, 0, fmt.Errorf("matrix has %d rows, at most %d supported", n, maxExtent)
	}

	data := make([]float64, 0, n*n)
	for i, row := range rows {
		cols := strings.Split(row, ",")
		if len(cols) != n {
			return nil, 0, fmt.Errorf("row %d has %d columns, matrix is not square (%d rows)", i+1, len(cols), n)
		}
		for j, c := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
			if err != nil {
				return nil, 0, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
			data = append(data, v)
		}
	}
	return data, n, nil
}
