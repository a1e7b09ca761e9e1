// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package analysis generates the synthetic sample dataset used to check a
// fresh notebook environment and computes descriptive statistics over it.
package analysis

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Kind is the type of a column's values.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindCategory
	KindDate
)

// Numeric reports whether values of kind k live in Column.Numbers.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

// Column holds one named series. Only the slice matching Kind is used.
// Missing values are NaN, "" and the zero time respectively.
type Column struct {
	Name    string
	Kind    Kind
	Numbers []float64
	Labels  []string
	Times   []time.Time
}

// Len returns the number of values in c.
func (c Column) Len() int {
	switch c.Kind {
	case KindCategory:
		return len(c.Labels)
	case KindDate:
		return len(c.Times)
	default:
		return len(c.Numbers)
	}
}

// Missing reports whether row i holds no value.
func (c Column) Missing(i int) bool {
	switch c.Kind {
	case KindCategory:
		return c.Labels[i] == ""
	case KindDate:
		return c.Times[i].IsZero()
	default:
		return math.IsNaN(c.Numbers[i])
	}
}

func (c Column) format(i int) string {
	if c.Missing(i) {
		return "NaN"
	}
	switch c.Kind {
	case KindInteger:
		return strconv.FormatInt(int64(c.Numbers[i]), 10)
	case KindFloat:
		return strconv.FormatFloat(c.Numbers[i], 'f', 6, 64)
	case KindCategory:
		return c.Labels[i]
	default:
		return c.Times[i].Format("2006-01-02")
	}
}

func (c Column) slice(n int) Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	switch c.Kind {
	case KindCategory:
		out.Labels = c.Labels[:n]
	case KindDate:
		out.Times = c.Times[:n]
	default:
		out.Numbers = c.Numbers[:n]
	}
	return out
}

// Frame is a table of equally long columns.
type Frame struct {
	Columns []Column
}

// Shape returns the number of rows and columns.
func (f Frame) Shape() (rows, cols int) {
	if len(f.Columns) == 0 {
		return 0, 0
	}
	return f.Columns[0].Len(), len(f.Columns)
}

// Column looks up a column by name.
func (f Frame) Column(name string) (Column, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Head returns the first n rows.
func (f Frame) Head(n int) Frame {
	rows, _ := f.Shape()
	n = min(max(n, 0), rows)
	out := Frame{Columns: make([]Column, len(f.Columns))}
	for i, c := range f.Columns {
		out.Columns[i] = c.slice(n)
	}
	return out
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render writes f as a bordered table with a leading row index.
func (f Frame) Render(w io.Writer) error {
	rows, _ := f.Shape()
	headers := []string{""}
	for _, c := range f.Columns {
		headers = append(headers, c.Name)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			return cellStyle
		}).
		Headers(headers...)
	for i := 0; i < rows; i++ {
		row := []string{strconv.Itoa(i)}
		for _, c := range f.Columns {
			row = append(row, c.format(i))
		}
		t.Row(row...)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// SampleSeed makes CreateSampleData deterministic.
const SampleSeed = 42

var sampleStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// CreateSampleData builds n rows of random data: a 1-based id, a standard
// normal value_a, an exponential value_b, a category drawn from X, Y and Z,
// and consecutive daily dates from 2024-01-01.
func CreateSampleData(n int) Frame {
	n = max(n, 0)
	rng := rand.New(rand.NewPCG(SampleSeed, SampleSeed))

	ids := make([]float64, n)
	valueA := make([]float64, n)
	valueB := make([]float64, n)
	category := make([]string, n)
	dates := make([]time.Time, n)
	for i := range n {
		ids[i] = float64(i + 1)
		dates[i] = sampleStart.AddDate(0, 0, i)
	}
	for i := range n {
		valueA[i] = rng.NormFloat64()
	}
	for i := range n {
		valueB[i] = rng.ExpFloat64()
	}
	labels := []string{"X", "Y", "Z"}
	for i := range n {
		category[i] = labels[rng.IntN(len(labels))]
	}

	return Frame{Columns: []Column{
		{Name: "id", Kind: KindInteger, Numbers: ids},
		{Name: "value_a", Kind: KindFloat, Numbers: valueA},
		{Name: "value_b", Kind: KindFloat, Numbers: valueB},
		{Name: "category", Kind: KindCategory, Labels: category},
		{Name: "date", Kind: KindDate, Times: dates},
	}}
}
