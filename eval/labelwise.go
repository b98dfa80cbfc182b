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
	"modernc.org/sortutil"

	"github.com/multilabel-io/mlstat/floats"
)

// Label-based metrics compute a confusion matrix per label. Macro averaging
// takes the arithmetic mean across labels, excluding labels without any
// positive instance; micro averaging pools the confusion counts across all
// labels first.

type confusion struct {
	tp, fp, fn, tn float32
}

func (c confusion) precision() float32 {
	if c.tp+c.fp == 0 {
		return 0
	}
	return c.tp / (c.tp + c.fp)
}

func (c confusion) recall() float32 {
	if c.tp+c.fn == 0 {
		return 0
	}
	return c.tp / (c.tp + c.fn)
}

func (c confusion) fMeasure() float32 {
	precision, recall := c.precision(), c.recall()
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

func labelConfusion(truth, decisions [][]int8, label int) confusion {
	var c confusion
	for i := range truth {
		switch {
		case truth[i][label] == 1 && decisions[i][label] == 1:
			c.tp++
		case truth[i][label] == 0 && decisions[i][label] == 1:
			c.fp++
		case truth[i][label] == 1 && decisions[i][label] == 0:
			c.fn++
		default:
			c.tn++
		}
	}
	return c
}

// auc is the rank-based estimator of the area under the ROC curve: the
// probability that a positive scores above a negative, with ties credited
// half. It is NaN without at least one positive and one negative.
func auc(positive, negative []float32) float32 {
	if len(positive) == 0 || len(negative) == 0 {
		return math32.NaN()
	}
	sort.Sort(sortutil.Float32Slice(positive))
	sort.Sort(sortutil.Float32Slice(negative))
	var sum float32
	less, lessOrEqual := 0, 0
	for _, p := range positive {
		for less < len(negative) && negative[less] < p {
			less++
		}
		if lessOrEqual < less {
			lessOrEqual = less
		}
		for lessOrEqual < len(negative) && negative[lessOrEqual] <= p {
			lessOrEqual++
		}
		sum += float32(less) + 0.5*float32(lessOrEqual-less)
	}
	return sum / float32(len(positive)*len(negative))
}

func labelScores(truth [][]int8, predictions [][]float32, label int) (positive, negative []float32) {
	for i := range truth {
		if truth[i][label] == 1 {
			positive = append(positive, predictions[i][label])
		} else {
			negative = append(negative, predictions[i][label])
		}
	}
	return
}

type macroScores struct {
	precision   float32
	recall      float32
	fMeasure    float32
	auc         float32
	excluded    int // labels without positives, left out of the means
	aucExcluded int // labels without both classes, left out of the AUC mean
}

func newMacroScores(truth, decisions [][]int8, predictions [][]float32) macroScores {
	numLabels := len(truth[0])
	var precisions, recalls, fMeasures, aucs []float32
	scores := macroScores{}
	for label := 0; label < numLabels; label++ {
		c := labelConfusion(truth, decisions, label)
		if c.tp+c.fn == 0 {
			scores.excluded++
		} else {
			precisions = append(precisions, c.precision())
			recalls = append(recalls, c.recall())
			fMeasures = append(fMeasures, c.fMeasure())
		}
		positive, negative := labelScores(truth, predictions, label)
		if len(positive) == 0 || len(negative) == 0 {
			scores.aucExcluded++
		} else {
			aucs = append(aucs, auc(positive, negative))
		}
	}
	scores.precision = floats.Mean(precisions)
	scores.recall = floats.Mean(recalls)
	scores.fMeasure = floats.Mean(fMeasures)
	scores.auc = floats.Mean(aucs)
	return scores
}

// MacroPrecision averages per-label precision across labels with at least
// one positive instance. The second return is the number of excluded
// labels.
func MacroPrecision(truth, decisions [][]int8) (float32, int) {
	scores := newMacroScores(truth, decisions, binaryScores(decisions))
	return scores.precision, scores.excluded
}

// MacroRecall averages per-label recall across labels with at least one
// positive instance.
func MacroRecall(truth, decisions [][]int8) (float32, int) {
	scores := newMacroScores(truth, decisions, binaryScores(decisions))
	return scores.recall, scores.excluded
}

// MacroFMeasure averages per-label F measure across labels with at least
// one positive instance.
func MacroFMeasure(truth, decisions [][]int8) (float32, int) {
	scores := newMacroScores(truth, decisions, binaryScores(decisions))
	return scores.fMeasure, scores.excluded
}

// MacroAUC averages the per-label AUC across labels carrying both classes.
// The second return is the number of excluded labels.
func MacroAUC(truth [][]int8, predictions [][]float32) (float32, int) {
	scores := newMacroScores(truth, binarizeMatrix(predictions), predictions)
	return scores.auc, scores.aucExcluded
}

type microScores struct {
	precision float32
	recall    float32
	fMeasure  float32
	auc       float32
}

func newMicroScores(truth, decisions [][]int8, predictions [][]float32) microScores {
	numLabels := len(truth[0])
	var pooled confusion
	var positive, negative []float32
	for label := 0; label < numLabels; label++ {
		c := labelConfusion(truth, decisions, label)
		pooled.tp += c.tp
		pooled.fp += c.fp
		pooled.fn += c.fn
		pooled.tn += c.tn
		labelPositive, labelNegative := labelScores(truth, predictions, label)
		positive = append(positive, labelPositive...)
		negative = append(negative, labelNegative...)
	}
	return microScores{
		precision: pooled.precision(),
		recall:    pooled.recall(),
		fMeasure:  pooled.fMeasure(),
		auc:       auc(positive, negative),
	}
}

// MicroPrecision computes precision on confusion counts pooled across all
// labels.
func MicroPrecision(truth, decisions [][]int8) float32 {
	return newMicroScores(truth, decisions, binaryScores(decisions)).precision
}

// MicroRecall computes recall on pooled confusion counts.
func MicroRecall(truth, decisions [][]int8) float32 {
	return newMicroScores(truth, decisions, binaryScores(decisions)).recall
}

// MicroFMeasure computes the F measure on pooled confusion counts.
func MicroFMeasure(truth, decisions [][]int8) float32 {
	return newMicroScores(truth, decisions, binaryScores(decisions)).fMeasure
}

// MicroAUC computes the rank-based AUC over all instance-label cells pooled
// into one binary problem.
func MicroAUC(truth [][]int8, predictions [][]float32) float32 {
	return newMicroScores(truth, binarizeMatrix(predictions), predictions).auc
}

func binaryScores(decisions [][]int8) [][]float32 {
	scores := make([][]float32, len(decisions))
	for i, row := range decisions {
		scores[i] = make([]float32, len(row))
		for j, bit := range row {
			scores[i][j] = float32(bit)
		}
	}
	return scores
}
