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

// Example-based metrics compare each predicted label row against the true
// row and average over instances. An instance whose true and predicted
// rows are both empty counts as perfect agreement on the empty set.

// SubsetAccuracy is the fraction of instances whose predicted row matches
// the true row exactly.
func SubsetAccuracy(truth, decisions [][]int8) float32 {
	match := 0
	for i, row := range truth {
		equal := true
		for j, bit := range row {
			if bit != decisions[i][j] {
				equal = false
				break
			}
		}
		if equal {
			match++
		}
	}
	return float32(match) / float32(len(truth))
}

// HammingLoss is the mean fraction of mismatched label bits.
func HammingLoss(truth, decisions [][]int8) float32 {
	mismatch := 0
	for i, row := range truth {
		for j, bit := range row {
			if bit != decisions[i][j] {
				mismatch++
			}
		}
	}
	return float32(mismatch) / float32(len(truth)*len(truth[0]))
}

// rowCounts returns the sizes of the intersection, the predicted set and
// the true set of one instance.
func rowCounts(truth, decisions []int8) (intersection, predicted, actual int) {
	for j, bit := range truth {
		if bit == 1 {
			actual++
		}
		if decisions[j] == 1 {
			predicted++
		}
		if bit == 1 && decisions[j] == 1 {
			intersection++
		}
	}
	return
}

// Accuracy is the Jaccard agreement |intersection| / |union| averaged over
// instances.
func Accuracy(truth, decisions [][]int8) float32 {
	var sum float32
	for i, row := range truth {
		intersection, predicted, actual := rowCounts(row, decisions[i])
		union := predicted + actual - intersection
		if union == 0 {
			sum++
			continue
		}
		sum += float32(intersection) / float32(union)
	}
	return sum / float32(len(truth))
}

// Precision is |intersection| / |predicted| averaged over instances.
func Precision(truth, decisions [][]int8) float32 {
	var sum float32
	for i, row := range truth {
		intersection, predicted, actual := rowCounts(row, decisions[i])
		if predicted == 0 {
			if actual == 0 {
				sum++
			}
			continue
		}
		sum += float32(intersection) / float32(predicted)
	}
	return sum / float32(len(truth))
}

// Recall is |intersection| / |true| averaged over instances.
func Recall(truth, decisions [][]int8) float32 {
	var sum float32
	for i, row := range truth {
		intersection, predicted, actual := rowCounts(row, decisions[i])
		if actual == 0 {
			if predicted == 0 {
				sum++
			}
			continue
		}
		sum += float32(intersection) / float32(actual)
	}
	return sum / float32(len(truth))
}

// FMeasure is the harmonic mean of per-instance precision and recall
// averaged over instances.
func FMeasure(truth, decisions [][]int8) float32 {
	var sum float32
	for i, row := range truth {
		intersection, predicted, actual := rowCounts(row, decisions[i])
		if predicted == 0 && actual == 0 {
			sum++
			continue
		}
		if intersection == 0 {
			continue
		}
		precision := float32(intersection) / float32(predicted)
		recall := float32(intersection) / float32(actual)
		sum += 2 * precision * recall / (precision + recall)
	}
	return sum / float32(len(truth))
}
