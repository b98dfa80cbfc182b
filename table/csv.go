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

package table

import (
	"encoding/csv"
	"io"

	"github.com/juju/errors"

	"github.com/multilabel-io/mlstat/base"
)

// ReadCSV reads a comma-separated table with a header row and returns the
// data cells and column names.
func ReadCSV(r io.Reader) (cells [][]string, names []string, err error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Annotatef(base.ErrInvalidInput, "read csv: %v", err)
	}
	if len(records) == 0 {
		return nil, nil, errors.Annotate(base.ErrInvalidInput, "csv input is empty")
	}
	return records[1:], records[0], nil
}
