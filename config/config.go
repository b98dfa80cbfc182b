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

// Package config loads the command line tool configuration.
package config

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/viper"

	"github.com/multilabel-io/mlstat/base"
	"github.com/multilabel-io/mlstat/table"
)

type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Labels LabelsConfig `mapstructure:"labels"`
	Output OutputConfig `mapstructure:"output"`
}

// DataConfig locates the dataset table.
type DataConfig struct {
	Path string `mapstructure:"path"`
}

// LabelsConfig designates the label columns. The fields mirror the
// designation priority: indices beat names, names beat count, count beats
// the side-channel names file.
type LabelsConfig struct {
	Indices   []int    `mapstructure:"indices"`
	Names     []string `mapstructure:"names"`
	Count     int      `mapstructure:"count"`
	NamesFile string   `mapstructure:"names_file"`
}

type OutputConfig struct {
	Format       string `mapstructure:"format"`        // table or csv
	TopLabelsets int    `mapstructure:"top_labelsets"` // labelsets listed by describe
}

func GetDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:       "table",
			TopLabelsets: 10,
		},
	}
}

// Load reads a TOML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Annotatef(base.ErrInvalidInput, "read config: %v", err)
	}
	config := GetDefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Annotatef(base.ErrInvalidInput, "parse config: %v", err)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return config, nil
}

func (config *Config) Validate() error {
	switch strings.ToLower(config.Output.Format) {
	case "table", "csv":
	default:
		return errors.Annotatef(base.ErrInvalidInput, "unknown output format %q", config.Output.Format)
	}
	if config.Output.TopLabelsets < 0 {
		return errors.Annotatef(base.ErrInvalidInput, "negative top_labelsets %d", config.Output.TopLabelsets)
	}
	return nil
}

// LabelSpec converts the label designation to the table model's form.
func (config *Config) LabelSpec() table.LabelSpec {
	return table.LabelSpec{
		Indices:   config.Labels.Indices,
		Names:     config.Labels.Names,
		Count:     config.Labels.Count,
		NamesFile: config.Labels.NamesFile,
	}
}
