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

	"github.com/stretchr/testify/assert"
)

func TestSubsetAccuracy(t *testing.T) {
	truth := [][]int8{{1, 0}, {0, 1}, {1, 1}}
	decisions := [][]int8{{1, 0}, {0, 1}, {1, 0}}
	assert.InDelta(t, 2.0/3.0, SubsetAccuracy(truth, decisions), evalEpsilon)
	assert.Equal(t, float32(1), SubsetAccuracy(truth, truth))
}

func TestHammingLoss(t *testing.T) {
	truth := [][]int8{{1, 0}, {0, 1}, {1, 1}}
	decisions := [][]int8{{1, 0}, {0, 1}, {1, 0}}
	assert.InDelta(t, 1.0/6.0, HammingLoss(truth, decisions), evalEpsilon)
	assert.Zero(t, HammingLoss(truth, truth))
}

func TestExampleBased(t *testing.T) {
	truth := [][]int8{{1, 1}, {0, 1}}
	decisions := [][]int8{{1, 0}, {1, 1}}
	// instance 0: intersection 1, predicted 1, true 2
	// instance 1: intersection 1, predicted 2, true 1
	assert.InDelta(t, (0.5+0.5)/2, Accuracy(truth, decisions), evalEpsilon)
	assert.InDelta(t, (1.0+0.5)/2, Precision(truth, decisions), evalEpsilon)
	assert.InDelta(t, (0.5+1.0)/2, Recall(truth, decisions), evalEpsilon)
	f0 := 2 * 1.0 * 0.5 / 1.5
	assert.InDelta(t, (f0+f0)/2, FMeasure(truth, decisions), evalEpsilon)
}

func TestExampleBased_EmptyRows(t *testing.T) {
	truth := [][]int8{{0, 0}}
	assert.Equal(t, float32(1), Accuracy(truth, [][]int8{{0, 0}}))
	assert.Equal(t, float32(1), Precision(truth, [][]int8{{0, 0}}))
	assert.Equal(t, float32(1), Recall(truth, [][]int8{{0, 0}}))
	assert.Equal(t, float32(1), FMeasure(truth, [][]int8{{0, 0}}))
	// empty truth but non-empty prediction is zero agreement
	assert.Zero(t, Recall(truth, [][]int8{{1, 0}}))
	assert.Zero(t, Precision([][]int8{{1, 0}}, [][]int8{{0, 0}}))
}
