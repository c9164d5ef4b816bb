package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mooddine/internal/model"
)

// Dining CSV header names, matched case-insensitively.
const (
	ColName         = "restaurant name"
	ColType         = "restaurant type"
	ColCost         = "avg cost (two people)"
	ColRating       = "rate (out of 5)"
	ColVotes        = "num of ratings"
	ColOnlineOrder  = "online_order"
	ColTableBooking = "table booking"
	ColArea         = "area"
	ColAddress      = "local address"
)

var requiredColumns = []string{
	ColName, ColType, ColCost, ColRating, ColVotes,
	ColOnlineOrder, ColTableBooking, ColArea, ColAddress,
}

// LoadCSV reads a dining CSV file.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return NewTable(model.VariantDining, path, rows), nil
}

// ReadCSV parses dining rows from r. Any malformed field fails the whole read.
func ReadCSV(r io.Reader) ([]model.Place, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		index[h] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	var places []model.Place
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line, _ := cr.FieldPos(0)

		p, err := parseRecord(record, index, line)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}

	if len(places) == 0 {
		return nil, ErrEmptyDataset
	}
	return places, nil
}

func parseRecord(record []string, index map[string]int, line int) (model.Place, error) {
	cell := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}
	fieldErr := func(col string, err error) error {
		return &FieldError{Line: line, Column: col, Value: cell(col), Err: err}
	}

	p := model.Place{
		Name:     cell(ColName),
		Category: cell(ColType),
		Area:     cell(ColArea),
		Address:  cell(ColAddress),
	}

	var err error
	if p.Cost, err = ParseCost(cell(ColCost)); err != nil {
		return p, fieldErr(ColCost, err)
	}
	if p.Rating, err = ParseRating(cell(ColRating)); err != nil {
		return p, fieldErr(ColRating, err)
	}
	if p.Votes, err = strconv.Atoi(cell(ColVotes)); err != nil {
		return p, fieldErr(ColVotes, err)
	}
	if p.OnlineOrder, err = ParseFlag(cell(ColOnlineOrder)); err != nil {
		return p, fieldErr(ColOnlineOrder, err)
	}
	if p.TableBooking, err = ParseFlag(cell(ColTableBooking)); err != nil {
		return p, fieldErr(ColTableBooking, err)
	}
	return p, nil
}
