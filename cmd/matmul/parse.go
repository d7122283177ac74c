package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ib-77/densemul/pkg/dense"
	"github.com/ib-77/densemul/pkg/num"
)

// parseMatrix reads "1 2 3; 4 5 6": rows separated by ';', elements by
// spaces or commas. Every row must be non-empty and of the same length.
func parseMatrix[T num.Number](s string, parse func(string) (T, error)) (*dense.Matrix[T], error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty matrix literal")
	}

	var data []T
	cols := -1
	rows := strings.Split(s, ";")
	for i, row := range rows {
		fields := strings.FieldsFunc(row, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
		if len(fields) == 0 {
			return nil, fmt.Errorf("row %d is empty", i)
		}
		if cols == -1 {
			cols = len(fields)
		}
		if len(fields) != cols {
			return nil, fmt.Errorf("row %d has %d elements, want %d", i, len(fields), cols)
		}
		for _, f := range fields {
			v, err := parse(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			data = append(data, v)
		}
	}

	return dense.NewChecked(data, len(rows), cols)
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
