// Copyright 2026 mlstat Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset computes the descriptor of a multi-label dataset:
// per-label frequencies and imbalance ratios, the distinct labelset mapping,
// per-instance and per-label concentration scores, and the aggregate
// measures derived from them. A descriptor is built once from a table and
// never mutated.
package dataset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/multilabel-io/mlstat/base"
	"github.com/multilabel-io/mlstat/floats"
	"github.com/multilabel-io/mlstat/table"
)

// Label holds the statistics of one label column.
type Label struct {
	Index    int     // position in the source table
	Name     string  // attribute name
	Positive int     // instances with the label active
	Negative int     // instances with the label inactive
	IR       float32 // majority-count / minority-count, +Inf when degenerate
	SCUMBLE  float32 // mean instance concentration where active, NaN when never active
	// Degenerate marks a label constant across all instances. Its IR is
	// infinite and excluded from aggregate means.
	Degenerate bool
}

// Labelset is one distinct combination of active labels with its frequency.
type Labelset struct {
	Key   string // the 0/1 tuple rendered in label order, e.g. "101"
	Mask  []int8
	Count int
}

// Measures is the fixed record of dataset-level summary scalars.
type Measures struct {
	NumInstances        int
	NumLabels           int
	Cardinality         float32 // mean active labels per instance
	Density             float32 // cardinality / number of labels
	DistinctLabelsets   int
	PropUniqueLabelsets float32 // share of distinct labelsets observed exactly once
	MeanIR              float32 // mean over finite imbalance ratios
	MaxIR               float32 // largest finite imbalance ratio, NaN when none
	MeanSCUMBLE         float32 // mean over label-level SCUMBLE, NaN-excluded
	NumDegenerate       int
}

// Dataset is the immutable descriptor of a multi-label dataset.
type Dataset struct {
	table     *table.Table
	labels    []Label
	labelsets []Labelset
	scumble   []float32
	measures  Measures
}

// New builds the full descriptor from a table. Construction is atomic: on
// error no partial descriptor is returned.
func New(t *table.Table) (*Dataset, error) {
	if t == nil || t.NumLabels() == 0 {
		return nil, errors.Annotate(base.ErrInvalidInput, "table has no label columns")
	}
	d := &Dataset{table: t}
	d.countLabels()
	d.collectLabelsets()
	d.computeSCUMBLE()
	d.assembleMeasures()
	return d, nil
}

// countLabels computes per-label positive/negative counts and imbalance
// ratios from the label matrix.
func (d *Dataset) countLabels() {
	matrix := d.table.LabelMatrix()
	names := d.table.LabelNames()
	indices := d.table.LabelIndices()
	d.labels = make([]Label, d.table.NumLabels())
	for j := range d.labels {
		positive := 0
		for i := range matrix {
			if matrix[i][j] == 1 {
				positive++
			}
		}
		negative := len(matrix) - positive
		d.labels[j] = Label{
			Index:    indices[j],
			Name:     names[j],
			Positive: positive,
			Negative: negative,
			IR:       imbalanceRatio(positive, negative),
		}
		d.labels[j].Degenerate = math32.IsInf(d.labels[j].IR, 1)
	}
}

// imbalanceRatio is the majority/minority count ratio of one label. It does
// not depend on which side is coded 1, and is +Inf for a constant label.
func imbalanceRatio(positive, negative int) float32 {
	majority, minority := positive, negative
	if majority < minority {
		majority, minority = minority, majority
	}
	if minority == 0 {
		return math32.Inf(1)
	}
	return float32(majority) / float32(minority)
}

// collectLabelsets groups instances by their label row and sorts the
// distinct combinations ascending by count so the rarest surface first.
// Ties keep first-seen order in the original row order.
func (d *Dataset) collectLabelsets() {
	matrix := d.table.LabelMatrix()
	counts := make(map[string]int)
	d.labelsets = make([]Labelset, 0)
	for _, row := range matrix {
		key := labelsetKey(row)
		if _, seen := counts[key]; !seen {
			mask := make([]int8, len(row))
			copy(mask, row)
			d.labelsets = append(d.labelsets, Labelset{Key: key, Mask: mask})
		}
		counts[key]++
	}
	for i := range d.labelsets {
		d.labelsets[i].Count = counts[d.labelsets[i].Key]
	}
	sort.SliceStable(d.labelsets, func(i, j int) bool {
		return d.labelsets[i].Count < d.labelsets[j].Count
	})
}

func labelsetKey(row []int8) string {
	var sb strings.Builder
	sb.Grow(len(row))
	for _, bit := range row {
		sb.WriteString(strconv.Itoa(int(bit)))
	}
	return sb.String()
}

// computeSCUMBLE fills the per-instance concentration scores and folds them
// into per-label SCUMBLE values.
func (d *Dataset) computeSCUMBLE() {
	matrix := d.table.LabelMatrix()
	d.scumble = make([]float32, len(matrix))
	for i, row := range matrix {
		d.scumble[i] = instanceSCUMBLE(row, d.labels)
	}
	for j := range d.labels {
		active := make([]float32, 0)
		for i, row := range matrix {
			if row[j] == 1 {
				active = append(active, d.scumble[i])
			}
		}
		// NaN when the label is never active
		d.labels[j].SCUMBLE = floats.Mean(active)
	}
}

// instanceSCUMBLE scores how much one instance mixes frequent and rare
// labels: one minus the ratio of the geometric to the arithmetic mean of the
// inverse imbalance ratios of its active labels. Instances with fewer than
// two active labels score 0.
func instanceSCUMBLE(row []int8, labels []Label) float32 {
	inverse := make([]float32, 0, len(row))
	for j, bit := range row {
		if bit == 1 {
			// 1/Inf underflows to 0 for degenerate labels
			inverse = append(inverse, 1/labels[j].IR)
		}
	}
	if len(inverse) <= 1 {
		return 0
	}
	am := floats.Mean(inverse)
	if am == 0 {
		return 0
	}
	gm := math32.Pow(floats.Prod(inverse), 1/float32(len(inverse)))
	return 1 - gm/am
}

// assembleMeasures folds the per-label and per-instance structures into the
// dataset-level summary record.
func (d *Dataset) assembleMeasures() {
	matrix := d.table.LabelMatrix()
	activeTotal := 0
	for _, row := range matrix {
		for _, bit := range row {
			if bit == 1 {
				activeTotal++
			}
		}
	}
	finiteIRs := lo.FilterMap(d.labels, func(label Label, _ int) (float32, bool) {
		return label.IR, !label.Degenerate
	})
	labelSCUMBLEs := lo.FilterMap(d.labels, func(label Label, _ int) (float32, bool) {
		return label.SCUMBLE, !math32.IsNaN(label.SCUMBLE)
	})
	unique := lo.CountBy(d.labelsets, func(set Labelset) bool {
		return set.Count == 1
	})
	maxIR := math32.NaN()
	if len(finiteIRs) > 0 {
		maxIR = lo.Max(finiteIRs)
	}
	d.measures = Measures{
		NumInstances:        len(matrix),
		NumLabels:           len(d.labels),
		Cardinality:         float32(activeTotal) / float32(len(matrix)),
		DistinctLabelsets:   len(d.labelsets),
		PropUniqueLabelsets: float32(unique) / float32(len(d.labelsets)),
		MeanIR:              floats.Mean(finiteIRs),
		MaxIR:               maxIR,
		MeanSCUMBLE:         floats.Mean(labelSCUMBLEs),
		NumDegenerate: lo.CountBy(d.labels, func(label Label) bool {
			return label.Degenerate
		}),
	}
	d.measures.Density = d.measures.Cardinality / float32(len(d.labels))
}

func (d *Dataset) CountInstances() int {
	return d.measures.NumInstances
}

func (d *Dataset) CountLabels() int {
	return d.measures.NumLabels
}

func (d *Dataset) Labels() []Label {
	return d.labels
}

func (d *Dataset) Labelsets() []Labelset {
	return d.labelsets
}

func (d *Dataset) Measures() Measures {
	return d.measures
}

// InstanceSCUMBLE returns the per-instance concentration scores in row
// order.
func (d *Dataset) InstanceSCUMBLE() []float32 {
	return d.scumble
}

// LabelMatrix exposes the underlying binary label matrix, suitable as the
// ground truth input of the evaluation engine.
func (d *Dataset) LabelMatrix() [][]int8 {
	return d.table.LabelMatrix()
}
