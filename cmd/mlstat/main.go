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

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/multilabel-io/mlstat/base"
	"github.com/multilabel-io/mlstat/base/log"
	"github.com/multilabel-io/mlstat/cmd/version"
	"github.com/multilabel-io/mlstat/config"
)

var rootCmd = &cobra.Command{
	Use:   "mlstat",
	Short: "mlstat: multi-label dataset statistics and evaluation",
	Long:  "A characterization and evaluation toolkit for multi-label datasets in Go",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
		}
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Check the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.BuildInfo())
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path of configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	log.AddFlags(rootCmd.PersistentFlags())
}

// loadConfig reads the configuration file named by --config, or returns the
// defaults when the flag is absent.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if !cmd.Flags().Changed("config") {
		return config.GetDefaultConfig(), nil
	}
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// render prints a summarizable entity as a two column table or as CSV rows.
func render(s base.Summarizable, header []string, format string) {
	if format == "csv" {
		for _, row := range s.Summary() {
			fmt.Printf("%s,%s\n", row[0], row[1])
		}
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header)
	for _, row := range s.Summary() {
		if err := table.Append(row); err != nil {
			log.Logger().Fatal("failed to append table row", zap.Error(err))
		}
	}
	if err := table.Render(); err != nil {
		log.Logger().Fatal("failed to render table", zap.Error(err))
	}
}

func main() {
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Logger().Fatal("failed to execute command", zap.Error(err))
	}
}
