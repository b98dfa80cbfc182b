// Copyright 2025 mlstat Project Authors
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

package log

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetLogger(t *testing.T) {
	temp, err := os.MkdirTemp("", "test_mlstat")
	assert.NoError(t, err)
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flagSet)
	assert.NoError(t, flagSet.Set("log-path", temp+"/mlstat.log"))
	SetLogger(flagSet, true)
	Logger().Info("test message", zap.String("key", "value"))
	_ = Logger().Sync()
	_, err = os.Stat(temp + "/mlstat.log")
	assert.NoError(t, err)
}

func TestCloseLogger(t *testing.T) {
	CloseLogger()
	assert.False(t, Logger().Core().Enabled(zap.ErrorLevel))
}
