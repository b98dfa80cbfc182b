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

package eval

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/multilabel-io/mlstat/base"
)

const evalEpsilon = 1e-5

func toScores(matrix [][]int8) [][]float32 {
	return binaryScores(matrix)
}

func TestEvaluate_SelfMatch(t *testing.T) {
	truth := [][]int8{{1, 0, 1}, {0, 1, 0}, {1, 1, 1}}
	result, err := Evaluate(truth, toScores(truth))
	assert.NoError(t, err)
	assert.Equal(t, float32(1), result.Get("SubsetAccuracy"))
	assert.Zero(t, result.Get("HammingLoss"))
	assert.Equal(t, float32(1), result.Get("Accuracy"))
	assert.Equal(t, float32(1), result.Get("Precision"))
	assert.Equal(t, float32(1), result.Get("Recall"))
	assert.Equal(t, float32(1), result.Get("FMeasure"))
	// binary predictions carry no ranking information
	assert.True(t, math32.IsNaN(result.Get("OneError")))
	assert.True(t, math32.IsNaN(result.Get("Coverage")))
	assert.True(t, math32.IsNaN(result.Get("RankingLoss")))
	assert.True(t, math32.IsNaN(result.Get("AveragePrecision")))
}

func TestEvaluate_Complement(t *testing.T) {
	truth := [][]int8{{1, 0}, {0, 1}, {1, 1}}
	complement := make([][]float32, len(truth))
	for i, row := range truth {
		complement[i] = make([]float32, len(row))
		for j, bit := range row {
			complement[i][j] = float32(1 - bit)
		}
	}
	result, err := Evaluate(truth, complement)
	assert.NoError(t, err)
	assert.Equal(t, float32(1), result.Get("HammingLoss"))
	assert.Zero(t, result.Get("SubsetAccuracy"))
}

func TestEvaluate_Concrete(t *testing.T) {
	truth := [][]int8{{1, 0}, {0, 1}, {1, 1}}
	predictions := [][]float32{{1, 0}, {0, 1}, {1, 0}}
	result, err := Evaluate(truth, predictions)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, result.Get("SubsetAccuracy"), evalEpsilon)
	assert.InDelta(t, 1.0/6.0, result.Get("HammingLoss"), evalEpsilon)
	assert.InDelta(t, (1.0+1.0+0.5)/3.0, result.Get("Accuracy"), evalEpsilon)
}

func TestEvaluate_ShapeMismatch(t *testing.T) {
	truth := [][]int8{{1, 0}, {0, 1}}
	_, err := Evaluate(truth, [][]float32{{1, 0}})
	assert.ErrorIs(t, err, base.ErrShapeMismatch)
	_, err = Evaluate(truth, [][]float32{{1, 0}, {0, 1, 0}})
	assert.ErrorIs(t, err, base.ErrShapeMismatch)
	_, err = Evaluate([][]int8{{1, 0}, {0}}, [][]float32{{1, 0}, {0, 1}})
	assert.ErrorIs(t, err, base.ErrShapeMismatch)
}

func TestEvaluate_InvalidInput(t *testing.T) {
	_, err := Evaluate(nil, nil)
	assert.ErrorIs(t, err, base.ErrInvalidInput)
	_, err = Evaluate([][]int8{{}}, [][]float32{{}})
	assert.ErrorIs(t, err, base.ErrInvalidInput)
}

func TestEvaluate_EmptyRows(t *testing.T) {
	// an instance empty in both truth and prediction is perfect agreement
	truth := [][]int8{{0, 0}, {1, 0}}
	predictions := [][]float32{{0, 0}, {1, 0}}
	result, err := Evaluate(truth, predictions)
	assert.NoError(t, err)
	assert.Equal(t, float32(1), result.Get("Accuracy"))
	assert.Equal(t, float32(1), result.Get("Precision"))
	assert.Equal(t, float32(1), result.Get("Recall"))
	assert.Equal(t, float32(1), result.Get("FMeasure"))
}

func TestResult(t *testing.T) {
	truth := [][]int8{{1, 0}, {0, 1}}
	result, err := Evaluate(truth, [][]float32{{0.9, 0.1}, {0.2, 0.8}})
	assert.NoError(t, err)
	assert.Equal(t, len(result.Names()), len(result.Map()))
	assert.Contains(t, result.Names(), "MicroAUC")
	assert.True(t, math32.IsNaN(result.Get("NoSuchMetric")))
	summary := result.Summary()
	assert.Len(t, summary, len(result.Names()))
	assert.Equal(t, "SubsetAccuracy", summary[0][0])
	var impl base.Summarizable = result
	assert.NotEmpty(t, impl.Summary())
}

func TestIsBinary(t *testing.T) {
	assert.True(t, isBinary([][]float32{{0, 1}, {1, 0}}))
	assert.False(t, isBinary([][]float32{{0, 0.5}}))
}

func TestBinarizeMatrix(t *testing.T) {
	decisions := binarizeMatrix([][]float32{{0.49, 0.5}, {0.9, 0.1}})
	assert.Equal(t, [][]int8{{0, 1}, {1, 0}}, decisions)
}
