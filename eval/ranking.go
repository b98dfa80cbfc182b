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
	"sort"

	"github.com/chewxy/math32"
	"github.com/juju/errors"

	"github.com/multilabel-io/mlstat/base"
)

// Ranking-based metrics order the labels of each instance by prediction
// score. They require real-valued scores: purely binary predictions carry
// no ranking information and yield ErrRequiresScores. Instances without any
// true label have nothing to rank and are skipped; a metric left without
// instances is NaN.

// rankOrder returns label indices sorted by descending score. Ties keep
// ascending label index so the ordering is reproducible.
func rankOrder(scores []float32) []int {
	order := make([]int, len(scores))
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}

func requireScores(predictions [][]float32) error {
	if isBinary(predictions) {
		return errors.Annotate(base.ErrRequiresScores, "predictions are purely binary")
	}
	return nil
}

// OneError is the fraction of instances whose top-ranked label is not a
// true label.
func OneError(truth [][]int8, predictions [][]float32) (float32, error) {
	if err := requireScores(predictions); err != nil {
		return math32.NaN(), errors.Trace(err)
	}
	var miss, count float32
	for i, row := range truth {
		if !hasPositive(row) {
			continue
		}
		count++
		top := rankOrder(predictions[i])[0]
		if row[top] == 0 {
			miss++
		}
	}
	return miss / count, nil
}

// Coverage is the mean 0-indexed rank depth needed to cover every true
// label of an instance.
func Coverage(truth [][]int8, predictions [][]float32) (float32, error) {
	if err := requireScores(predictions); err != nil {
		return math32.NaN(), errors.Trace(err)
	}
	var sum, count float32
	for i, row := range truth {
		if !hasPositive(row) {
			continue
		}
		count++
		depth := 0
		for position, label := range rankOrder(predictions[i]) {
			if row[label] == 1 {
				depth = position
			}
		}
		sum += float32(depth)
	}
	return sum / count, nil
}

// RankingLoss is the mean fraction of (true, false) label pairs ordered
// incorrectly by score. A tie counts half.
func RankingLoss(truth [][]int8, predictions [][]float32) (float32, error) {
	if err := requireScores(predictions); err != nil {
		return math32.NaN(), errors.Trace(err)
	}
	var sum, count float32
	for i, row := range truth {
		var wrong float32
		pairs := 0
		for u, bit := range row {
			if bit != 1 {
				continue
			}
			for v, other := range row {
				if other == 1 {
					continue
				}
				pairs++
				if predictions[i][u] < predictions[i][v] {
					wrong++
				} else if predictions[i][u] == predictions[i][v] {
					wrong += 0.5
				}
			}
		}
		if pairs == 0 {
			continue
		}
		count++
		sum += wrong / float32(pairs)
	}
	return sum / count, nil
}

// AveragePrecision is the precision at the rank of each true label,
// averaged over the true labels of an instance and then over instances.
func AveragePrecision(truth [][]int8, predictions [][]float32) (float32, error) {
	if err := requireScores(predictions); err != nil {
		return math32.NaN(), errors.Trace(err)
	}
	var sum, count float32
	for i, row := range truth {
		if !hasPositive(row) {
			continue
		}
		count++
		var instanceSum float32
		actual := 0
		trueSeen := 0
		for position, label := range rankOrder(predictions[i]) {
			if row[label] == 1 {
				trueSeen++
				instanceSum += float32(trueSeen) / float32(position+1)
			}
		}
		for _, bit := range row {
			if bit == 1 {
				actual++
			}
		}
		sum += instanceSum / float32(actual)
	}
	return sum / count, nil
}

func hasPositive(row []int8) bool {
	for _, bit := range row {
		if bit == 1 {
			return true
		}
	}
	return false
}
