package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"Espuma/internal/calc/batch"
	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

// Read parses the first sheet of an xlsx workbook into a batch.
//
// The first row is a header: the first column holds the formulation (id or
// display name), the remaining header cells name the variables, e.g.
//
//	formulacao         | volume | fator
//	Espuma Alexandrina | 1776   | 1
//
// Blank rows are skipped.
func Read(reg *formulation.Registry, r io.Reader) (batch.Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return batch.Input{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return batch.Input{}, fmt.Errorf("reading sheet: %w", err)
	}
	return ParseRows(reg, rows)
}

// ParseRows converts sheet rows (header first) into batch items.
func ParseRows(reg *formulation.Registry, rows [][]string) (batch.Input, error) {
	if len(rows) < 2 || len(rows[0]) < 2 {
		return batch.Input{}, ErrEmptySheet
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var in batch.Input
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		item := foam.Input{
			Formulation: resolve(reg, cell(row, 0)),
			Inputs:      make(map[string]string, len(header)-1),
		}
		for i := 1; i < len(header); i++ {
			if header[i] == "" {
				continue
			}
			item.Inputs[header[i]] = cell(row, i)
		}
		in.Items = append(in.Items, item)
	}
	if len(in.Items) == 0 {
		return batch.Input{}, ErrEmptySheet
	}
	return in, nil
}

// resolve accepts an id or a display name. Unknown values are kept as ids so
// the batch reports them per item.
func resolve(reg *formulation.Registry, v string) formulation.ID {
	for _, e := range reg.List() {
		if strings.EqualFold(string(e.ID), v) || strings.EqualFold(e.Name, v) {
			return e.ID
		}
	}
	return formulation.ID(v)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
