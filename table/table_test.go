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

package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/multilabel-io/mlstat/base"
)

func TestNew(t *testing.T) {
	cells := [][]string{
		{"1.5", "red", "1", "yes"},
		{"2.5", "green", "0", ""},
		{"3.5", "red", "1", "yes"},
	}
	names := []string{"width", "color", "a", "b"}
	tab, err := New(cells, names, LabelSpec{Indices: []int{2, 3}})
	assert.NoError(t, err)
	assert.Equal(t, 3, tab.NumRows())
	assert.Equal(t, 4, tab.NumColumns())
	assert.Equal(t, 2, tab.NumLabels())
	assert.Equal(t, []int{2, 3}, tab.LabelIndices())
	assert.Equal(t, []string{"a", "b"}, tab.LabelNames())
	assert.Equal(t, Numeric, tab.Columns()[0].Type)
	assert.Equal(t, Nominal, tab.Columns()[1].Type)
	assert.Equal(t, []string{"red", "green"}, tab.Columns()[1].Levels)
	assert.Equal(t, Label, tab.Columns()[2].Type)
	assert.Equal(t, [][]int8{{1, 1}, {0, 0}, {1, 1}}, tab.LabelMatrix())
	assert.Equal(t, []string{"2.5", "green", "0", ""}, tab.Row(1))
}

func TestNew_Binarization(t *testing.T) {
	// numeric label columns treat nonzero as active, nominal label columns
	// treat any non-empty value as active
	cells := [][]string{
		{"2", "yes"},
		{"0", ""},
		{"2", "yes"},
	}
	tab, err := New(cells, []string{"a", "b"}, LabelSpec{Indices: []int{0, 1}})
	assert.NoError(t, err)
	assert.Equal(t, [][]int8{{1, 1}, {0, 0}, {1, 1}}, tab.LabelMatrix())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(nil, nil, LabelSpec{Count: 1})
	assert.ErrorIs(t, err, base.ErrInvalidInput)

	// ragged row
	_, err = New([][]string{{"1", "2"}, {"1"}}, []string{"a", "b"}, LabelSpec{Indices: []int{1}})
	assert.ErrorIs(t, err, base.ErrInvalidInput)

	// more than two distinct values in a label column
	_, err = New([][]string{{"a"}, {"b"}, {"c"}}, []string{"l"}, LabelSpec{Indices: []int{0}})
	assert.ErrorIs(t, err, base.ErrInvalidInput)

	// out of range and duplicate indices
	_, err = New([][]string{{"1"}}, []string{"l"}, LabelSpec{Indices: []int{1}})
	assert.ErrorIs(t, err, base.ErrInvalidInput)
	_, err = New([][]string{{"1", "0"}}, []string{"a", "b"}, LabelSpec{Indices: []int{0, 0}})
	assert.ErrorIs(t, err, base.ErrInvalidInput)

	// unknown label name
	_, err = New([][]string{{"1"}}, []string{"l"}, LabelSpec{Names: []string{"m"}})
	assert.ErrorIs(t, err, base.ErrInvalidInput)

	// no designation at all
	_, err = New([][]string{{"1"}}, []string{"l"}, LabelSpec{})
	assert.ErrorIs(t, err, base.ErrInvalidInput)
}

func TestLabelSpec_Priority(t *testing.T) {
	cells := [][]string{{"1", "0", "1"}}
	names := []string{"a", "b", "c"}

	// explicit indices win over names and count
	tab, err := New(cells, names, LabelSpec{Indices: []int{0}, Names: []string{"b"}, Count: 3})
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, tab.LabelIndices())

	// names win over count
	tab, err = New(cells, names, LabelSpec{Names: []string{"b"}, Count: 3})
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, tab.LabelIndices())

	// count selects the trailing columns
	tab, err = New(cells, names, LabelSpec{Count: 2})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, tab.LabelIndices())
	assert.Equal(t, 2, tab.NumLabels())
	_, err = New(cells, names, LabelSpec{Count: 4})
	assert.ErrorIs(t, err, base.ErrInvalidInput)
}

func TestLabelSpec_NamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	assert.NoError(t, os.WriteFile(path, []byte("# labels\nb\nc\n\n"), 0644))
	tab, err := New([][]string{{"1", "0", "1"}}, []string{"a", "b", "c"}, LabelSpec{NamesFile: path})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, tab.LabelIndices())

	_, err = New([][]string{{"1"}}, []string{"a"}, LabelSpec{NamesFile: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, base.ErrInvalidInput)
}

func TestLabelSpec_HeaderHint(t *testing.T) {
	tab, err := New([][]string{{"3.14", "1"}}, []string{"x", "label:spam"}, LabelSpec{})
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, tab.LabelIndices())
	assert.Equal(t, []string{"spam"}, tab.LabelNames())
	assert.Equal(t, "x", tab.Columns()[0].Name)
}

func TestReadCSV(t *testing.T) {
	cells, names, err := ReadCSV(strings.NewReader("x,a,b\n1.5,1,0\n2.5,0,1\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "b"}, names)
	assert.Equal(t, [][]string{{"1.5", "1", "0"}, {"2.5", "0", "1"}}, cells)

	_, _, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, base.ErrInvalidInput)
}
