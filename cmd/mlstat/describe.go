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
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/multilabel-io/mlstat/base/log"
	"github.com/multilabel-io/mlstat/dataset"
	"github.com/multilabel-io/mlstat/table"
)

var describeCmd = &cobra.Command{
	Use:   "describe DATA_FILE",
	Short: "Characterize a multi-label dataset",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := loadConfig(cmd)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
		path := conf.Data.Path
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			log.Logger().Fatal("no dataset file given")
		}
		spec := conf.LabelSpec()
		if indices, _ := cmd.Flags().GetIntSlice("label-indices"); len(indices) > 0 {
			spec = table.LabelSpec{Indices: indices}
		} else if names, _ := cmd.Flags().GetStringSlice("label-names"); len(names) > 0 {
			spec = table.LabelSpec{Names: names}
		} else if count, _ := cmd.Flags().GetInt("label-count"); count > 0 {
			spec = table.LabelSpec{Count: count}
		} else if namesFile, _ := cmd.Flags().GetString("labels-file"); namesFile != "" {
			spec = table.LabelSpec{NamesFile: namesFile}
		}
		d, err := describe(path, spec)
		if err != nil {
			log.Logger().Fatal("failed to describe dataset", zap.String("path", path), zap.Error(err))
		}
		render(d, []string{"Measure", "Value"}, conf.Output.Format)
		if conf.Output.Format == "table" {
			fmt.Println()
			renderLabels(d)
			fmt.Println()
			renderLabelsets(d, conf.Output.TopLabelsets)
		}
	},
}

func init() {
	describeCmd.Flags().IntSlice("label-indices", nil, "label column positions")
	describeCmd.Flags().StringSlice("label-names", nil, "label column names")
	describeCmd.Flags().Int("label-count", 0, "number of trailing label columns")
	describeCmd.Flags().String("labels-file", "", "file listing label names, one per line")
}

func describe(path string, spec table.LabelSpec) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cells, names, err := table.ReadCSV(file)
	if err != nil {
		return nil, err
	}
	tab, err := table.New(cells, names, spec)
	if err != nil {
		return nil, err
	}
	log.Logger().Info("loaded dataset",
		zap.String("path", path),
		zap.Int("instances", tab.NumRows()),
		zap.Int("labels", tab.NumLabels()))
	return dataset.New(tab)
}

func renderLabels(d *dataset.Dataset) {
	t := tablewriter.NewWriter(os.Stdout)
	t.Header([]string{"Label", "Positive", "Negative", "IR", "SCUMBLE", "Degenerate"})
	for _, label := range d.Labels() {
		if err := t.Append([]string{
			label.Name,
			strconv.Itoa(label.Positive),
			strconv.Itoa(label.Negative),
			formatScore(label.IR),
			formatScore(label.SCUMBLE),
			strconv.FormatBool(label.Degenerate),
		}); err != nil {
			log.Logger().Fatal("failed to append table row", zap.Error(err))
		}
	}
	if err := t.Render(); err != nil {
		log.Logger().Fatal("failed to render table", zap.Error(err))
	}
}

// renderLabelsets lists the rarest label combinations first.
func renderLabelsets(d *dataset.Dataset, top int) {
	t := tablewriter.NewWriter(os.Stdout)
	t.Header([]string{"Labelset", "Count"})
	for i, set := range d.Labelsets() {
		if i >= top {
			break
		}
		if err := t.Append([]string{set.Key, strconv.Itoa(set.Count)}); err != nil {
			log.Logger().Fatal("failed to append table row", zap.Error(err))
		}
	}
	if err := t.Render(); err != nil {
		log.Logger().Fatal("failed to render table", zap.Error(err))
	}
}

func formatScore(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}
