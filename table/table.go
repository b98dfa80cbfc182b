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

// Package table implements the raw table model behind multi-label datasets:
// typed attribute columns, a designated subset of label columns, and the
// binary label matrix derived from them.
package table

import (
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/multilabel-io/mlstat/base"
)

// HeaderHintPrefix marks a column as a label through its name when no other
// designation rule applies. The prefix is stripped from the recorded
// attribute name.
const HeaderHintPrefix = "label:"

type ColumnType int

const (
	Numeric ColumnType = iota
	Nominal
	Label
)

func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Nominal:
		return "nominal"
	case Label:
		return "label"
	default:
		return "unknown"
	}
}

// Column describes one attribute of the table. Nominal columns record their
// observed factor levels in first-seen order.
type Column struct {
	Name   string
	Type   ColumnType
	Levels []string
}

// Table is an immutable rectangular table with a resolved set of label
// columns and the binary label matrix derived from them.
type Table struct {
	columns      []Column
	cells        [][]string
	labelIndices []int
	labelMatrix  [][]int8
}

// New validates a rectangular table against a label designation and builds
// the typed column descriptors and the binary label matrix. Construction is
// all or nothing: any validation failure returns a nil table.
func New(cells [][]string, names []string, spec LabelSpec) (*Table, error) {
	if len(names) == 0 {
		return nil, errors.Annotate(base.ErrInvalidInput, "table has zero columns")
	}
	for i, row := range cells {
		if len(row) != len(names) {
			return nil, errors.Annotatef(base.ErrInvalidInput,
				"row %d has %d cells, expected %d", i, len(row), len(names))
		}
	}
	labelIndices, names, err := spec.resolve(names)
	if err != nil {
		return nil, errors.Trace(err)
	}
	t := &Table{
		columns:      make([]Column, len(names)),
		cells:        cells,
		labelIndices: labelIndices,
	}
	isLabel := mapset.NewSet(labelIndices...)
	for j, name := range names {
		column, err := typeColumn(name, j, cells, isLabel.Contains(j))
		if err != nil {
			return nil, errors.Trace(err)
		}
		t.columns[j] = column
	}
	t.labelMatrix = make([][]int8, len(cells))
	for i, row := range cells {
		t.labelMatrix[i] = make([]int8, len(labelIndices))
		for j, col := range labelIndices {
			t.labelMatrix[i][j] = binarize(row[col])
		}
	}
	return t, nil
}

// typeColumn infers the type of one column. Label columns must hold at most
// two distinct raw values; other columns are numeric when every non-empty
// cell parses as a float and nominal otherwise.
func typeColumn(name string, index int, cells [][]string, label bool) (Column, error) {
	distinct := mapset.NewSet[string]()
	levels := make([]string, 0)
	numeric := true
	for _, row := range cells {
		value := row[index]
		if value == "" {
			continue
		}
		if !distinct.Contains(value) {
			distinct.Add(value)
			levels = append(levels, value)
		}
		if _, err := strconv.ParseFloat(value, 32); err != nil {
			numeric = false
		}
	}
	if label {
		if distinct.Cardinality() > 2 {
			return Column{}, errors.Annotatef(base.ErrInvalidInput,
				"label column %q has %d distinct values", name, distinct.Cardinality())
		}
		return Column{Name: name, Type: Label, Levels: levels}, nil
	}
	if numeric {
		return Column{Name: name, Type: Numeric}, nil
	}
	return Column{Name: name, Type: Nominal, Levels: levels}, nil
}

// binarize maps one raw label cell to a bit. Numeric values count as active
// when nonzero, any other non-empty value counts as active, and a missing
// value counts as inactive.
func binarize(value string) int8 {
	if value == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(value, 32); err == nil {
		if v != 0 {
			return 1
		}
		return 0
	}
	return 1
}

func (t *Table) NumRows() int {
	return len(t.cells)
}

func (t *Table) NumColumns() int {
	return len(t.columns)
}

func (t *Table) NumLabels() int {
	return len(t.labelIndices)
}

func (t *Table) Columns() []Column {
	return t.columns
}

func (t *Table) Row(i int) []string {
	return t.cells[i]
}

func (t *Table) LabelIndices() []int {
	return t.labelIndices
}

func (t *Table) LabelNames() []string {
	return lo.Map(t.labelIndices, func(index int, _ int) string {
		return t.columns[index].Name
	})
}

// LabelMatrix returns the N x L binary label matrix in label designation
// order. The matrix is shared, not copied; callers must not modify it.
func (t *Table) LabelMatrix() [][]int8 {
	return t.labelMatrix
}
