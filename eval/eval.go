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

// Package eval scores multi-label predictions against a ground truth
// matrix. It computes example-based, ranking-based and label-based
// (macro/micro averaged) metrics in one call; a metric that cannot be
// computed for the given inputs degrades to NaN instead of failing the
// whole evaluation.
package eval

import (
	"strconv"

	"github.com/chewxy/math32"
	"github.com/juju/errors"

	"github.com/multilabel-io/mlstat/base"
)

// BinarizeThreshold converts real-valued scores to label decisions.
const BinarizeThreshold = 0.5

// Result is an ordered mapping from metric name to scalar value.
type Result struct {
	names  []string
	values map[string]float32
}

func (r *Result) add(name string, value float32) {
	r.names = append(r.names, name)
	r.values[name] = value
}

// Names returns the metric names in report order.
func (r *Result) Names() []string {
	return r.names
}

// Get returns the value of one metric, NaN if the metric is unknown.
func (r *Result) Get(name string) float32 {
	if value, exists := r.values[name]; exists {
		return value
	}
	return math32.NaN()
}

// Map returns the metric mapping as a plain map.
func (r *Result) Map() map[string]float32 {
	m := make(map[string]float32, len(r.values))
	for name, value := range r.values {
		m[name] = value
	}
	return m
}

// Summary renders the metric mapping as ordered name/value rows.
func (r *Result) Summary() [][]string {
	rows := make([][]string, 0, len(r.names))
	for _, name := range r.names {
		rows = append(rows, []string{name, strconv.FormatFloat(float64(r.values[name]), 'g', 6, 32)})
	}
	return rows
}

// Evaluate scores predictions against ground truth and returns the full
// metric mapping. Predictions may be binary decisions or real-valued
// scores; ranking metrics are NaN when only binary decisions are available.
func Evaluate(truth [][]int8, predictions [][]float32) (*Result, error) {
	if err := validateShapes(truth, predictions); err != nil {
		return nil, errors.Trace(err)
	}
	decisions := binarizeMatrix(predictions)
	result := &Result{values: make(map[string]float32)}
	result.add("SubsetAccuracy", SubsetAccuracy(truth, decisions))
	result.add("HammingLoss", HammingLoss(truth, decisions))
	result.add("Accuracy", Accuracy(truth, decisions))
	result.add("Precision", Precision(truth, decisions))
	result.add("Recall", Recall(truth, decisions))
	result.add("FMeasure", FMeasure(truth, decisions))
	result.add("OneError", nanOnError(OneError(truth, predictions)))
	result.add("Coverage", nanOnError(Coverage(truth, predictions)))
	result.add("RankingLoss", nanOnError(RankingLoss(truth, predictions)))
	result.add("AveragePrecision", nanOnError(AveragePrecision(truth, predictions)))
	macro := newMacroScores(truth, decisions, predictions)
	result.add("MacroPrecision", macro.precision)
	result.add("MacroRecall", macro.recall)
	result.add("MacroFMeasure", macro.fMeasure)
	result.add("MacroAUC", macro.auc)
	result.add("MacroExcluded", float32(macro.excluded))
	result.add("MacroAUCExcluded", float32(macro.aucExcluded))
	micro := newMicroScores(truth, decisions, predictions)
	result.add("MicroPrecision", micro.precision)
	result.add("MicroRecall", micro.recall)
	result.add("MicroFMeasure", micro.fMeasure)
	result.add("MicroAUC", micro.auc)
	return result, nil
}

// nanOnError degrades a failed metric to NaN so one metric never aborts the
// rest of the evaluation.
func nanOnError(value float32, err error) float32 {
	if err != nil {
		return math32.NaN()
	}
	return value
}

func validateShapes(truth [][]int8, predictions [][]float32) error {
	if len(truth) == 0 {
		return errors.Annotate(base.ErrInvalidInput, "ground truth has no instances")
	}
	numLabels := len(truth[0])
	if numLabels == 0 {
		return errors.Annotate(base.ErrInvalidInput, "ground truth has no labels")
	}
	if len(predictions) != len(truth) {
		return errors.Annotatef(base.ErrShapeMismatch,
			"%d prediction rows for %d ground truth rows", len(predictions), len(truth))
	}
	for i := range truth {
		if len(truth[i]) != numLabels {
			return errors.Annotatef(base.ErrShapeMismatch,
				"ground truth row %d has %d labels, expected %d", i, len(truth[i]), numLabels)
		}
		if len(predictions[i]) != numLabels {
			return errors.Annotatef(base.ErrShapeMismatch,
				"prediction row %d has %d labels, expected %d", i, len(predictions[i]), numLabels)
		}
	}
	return nil
}

// isBinary reports whether every prediction is exactly 0 or 1, i.e. the
// matrix carries decisions but no ranking information.
func isBinary(predictions [][]float32) bool {
	for _, row := range predictions {
		for _, value := range row {
			if value != 0 && value != 1 {
				return false
			}
		}
	}
	return true
}

func binarizeMatrix(predictions [][]float32) [][]int8 {
	decisions := make([][]int8, len(predictions))
	for i, row := range predictions {
		decisions[i] = make([]int8, len(row))
		for j, value := range row {
			if value >= BinarizeThreshold {
				decisions[i][j] = 1
			}
		}
	}
	return decisions
}
