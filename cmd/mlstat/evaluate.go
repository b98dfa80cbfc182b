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
package main

import (
	"os"
	"strconv"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/multilabel-io/mlstat/base"
	"github.com/multilabel-io/mlstat/base/log"
	"github.com/multilabel-io/mlstat/eval"
	"github.com/multilabel-io/mlstat/table"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate TRUTH_FILE PREDICTIONS_FILE",
	Short: "Score predictions against a ground truth label matrix",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := loadConfig(cmd)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
		truth, err := readTruth(args[0])
		if err != nil {
			log.Logger().Fatal("failed to read ground truth", zap.String("path", args[0]), zap.Error(err))
		}
		predictions, err := readPredictions(args[1])
		if err != nil {
			log.Logger().Fatal("failed to read predictions", zap.String("path", args[1]), zap.Error(err))
		}
		result, err := eval.Evaluate(truth, predictions)
		if err != nil {
			log.Logger().Fatal("failed to evaluate predictions", zap.Error(err))
		}
		render(result, []string{"Metric", "Value"}, conf.Output.Format)
	},
}

func readMatrix(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cells, _, err := table.ReadCSV(file)
	return cells, err
}

func readTruth(path string) ([][]int8, error) {
	cells, err := readMatrix(path)
	if err != nil {
		return nil, err
	}
	matrix := make([][]int8, len(cells))
	for i, row := range cells {
		matrix[i] = make([]int8, len(row))
		for j, cell := range row {
			switch cell {
			case "0":
				matrix[i][j] = 0
			case "1":
				matrix[i][j] = 1
			default:
				return nil, errors.Annotatef(base.ErrInvalidInput,
					"ground truth cell (%d, %d) is %q, expected 0 or 1", i, j, cell)
			}
		}
	}
	return matrix, nil
}

func readPredictions(path string) ([][]float32, error) {
	cells, err := readMatrix(path)
	if err != nil {
		return nil, err
	}
	matrix := make([][]float32, len(cells))
	for i, row := range cells {
		matrix[i] = make([]float32, len(row))
		for j, cell := range row {
			value, err := strconv.ParseFloat(cell, 32)
			if err != nil {
				return nil, errors.Annotatef(base.ErrInvalidInput,
					"prediction cell (%d, %d) is not numeric: %v", i, j, err)
			}
			matrix[i][j] = float32(value)
		}
	}
	return matrix, nil
}
