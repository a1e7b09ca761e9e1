// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package analysis

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"strings"
)

// Summary describes the non-missing values of a numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation; NaN below two values
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

type ColumnSummary struct {
	Column string
	Summary
}

type ValueCount struct {
	Value string
	Count int
}

type CategoryCounts struct {
	Column string
	Counts []ValueCount // most frequent first
}

type MissingCount struct {
	Column string
	Count  int
}

// Analysis is the result of Analyze. Slices follow the frame's column order.
type Analysis struct {
	Rows, Cols  int
	Missing     []MissingCount
	Numeric     []ColumnSummary
	Categorical []CategoryCounts
}

// Analyze computes the shape, missing values, numeric summaries and category
// frequencies of f. Date columns only contribute to shape and missing values.
func Analyze(f Frame) Analysis {
	var a Analysis
	a.Rows, a.Cols = f.Shape()

	for _, c := range f.Columns {
		missing := 0
		for i := range c.Len() {
			if c.Missing(i) {
				missing++
			}
		}
		a.Missing = append(a.Missing, MissingCount{Column: c.Name, Count: missing})

		switch {
		case c.Kind.Numeric():
			a.Numeric = append(a.Numeric, ColumnSummary{Column: c.Name, Summary: Describe(c.Numbers)})
		case c.Kind == KindCategory:
			a.Categorical = append(a.Categorical, CategoryCounts{Column: c.Name, Counts: ValueCounts(c.Labels)})
		}
	}
	return a
}

// Describe summarizes values, ignoring NaN.
func Describe(values []float64) Summary {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	s := Summary{Count: len(clean)}
	if s.Count == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}
	slices.Sort(clean)

	var sum float64
	for _, v := range clean {
		sum += v
	}
	s.Mean = sum / float64(s.Count)

	s.Std = math.NaN()
	if s.Count > 1 {
		var sq float64
		for _, v := range clean {
			d := v - s.Mean
			sq += d * d
		}
		s.Std = math.Sqrt(sq / float64(s.Count-1))
	}

	s.Min = clean[0]
	s.Max = clean[len(clean)-1]
	s.Q25 = quantile(clean, 0.25)
	s.Median = quantile(clean, 0.5)
	s.Q75 = quantile(clean, 0.75)
	return s
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// ValueCounts counts non-empty labels, most frequent first. Ties keep the
// order in which the labels first appear.
func ValueCounts(labels []string) []ValueCount {
	index := map[string]int{}
	var counts []ValueCount
	for _, l := range labels {
		if l == "" {
			continue
		}
		i, ok := index[l]
		if !ok {
			i = len(counts)
			index[l] = i
			counts = append(counts, ValueCount{Value: l})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// PrintAnalysis writes a in the short human-readable form.
func PrintAnalysis(w io.Writer, a Analysis) {
	fmt.Fprintf(w, "Dataset shape: (%d, %d)\n", a.Rows, a.Cols)

	fmt.Fprintln(w, "\nMissing values:")
	for _, m := range a.Missing {
		if m.Count > 0 {
			fmt.Fprintf(w, "  %s: %d\n", m.Column, m.Count)
		}
	}

	if len(a.Numeric) > 0 {
		fmt.Fprintln(w, "\nNumeric variables summary:")
		for _, n := range a.Numeric {
			fmt.Fprintf(w, "  %s: mean=%.2f\n", n.Column, n.Mean)
		}
	}

	if len(a.Categorical) > 0 {
		fmt.Fprintln(w, "\nCategorical variables:")
		for _, c := range a.Categorical {
			values := make([]string, len(c.Counts))
			for i, vc := range c.Counts {
				values[i] = vc.Value
			}
			fmt.Fprintf(w, "  %s: [%s]\n", c.Column, strings.Join(values, " "))
		}
	}
}
