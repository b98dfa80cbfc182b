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
	"bufio"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"

	"github.com/multilabel-io/mlstat/base"
)

// LabelSpec designates which columns of a table are labels. The rules are
// tried in priority order: explicit indices, explicit names, trailing count,
// side-channel names file, and finally the header hint prefix on column
// names. The first rule that is present wins; a present rule that fails to
// resolve is an error rather than a fallthrough.
type LabelSpec struct {
	Indices   []int
	Names     []string
	Count     int
	NamesFile string
}

// resolve returns the label column positions and the column names with any
// header hint prefixes stripped.
func (spec LabelSpec) resolve(names []string) ([]int, []string, error) {
	switch {
	case len(spec.Indices) > 0:
		indices, err := validateIndices(spec.Indices, len(names))
		return indices, names, err
	case len(spec.Names) > 0:
		indices, err := indicesForNames(spec.Names, names)
		return indices, names, err
	case spec.Count > 0:
		if spec.Count > len(names) {
			return nil, nil, errors.Annotatef(base.ErrInvalidInput,
				"label count %d exceeds %d columns", spec.Count, len(names))
		}
		indices := make([]int, spec.Count)
		for i := range indices {
			indices[i] = len(names) - spec.Count + i
		}
		return indices, names, nil
	case spec.NamesFile != "":
		labelNames, err := readNamesFile(spec.NamesFile)
		if err != nil {
			return nil, nil, errors.Trace(err)
		}
		indices, err := indicesForNames(labelNames, names)
		return indices, names, err
	default:
		return resolveHeaderHint(names)
	}
}

func validateIndices(indices []int, numColumns int) ([]int, error) {
	seen := mapset.NewSet[int]()
	resolved := make([]int, 0, len(indices))
	for _, index := range indices {
		if index < 0 || index >= numColumns {
			return nil, errors.Annotatef(base.ErrInvalidInput,
				"label index %d out of range [0, %d)", index, numColumns)
		}
		if seen.Contains(index) {
			return nil, errors.Annotatef(base.ErrInvalidInput, "duplicate label index %d", index)
		}
		seen.Add(index)
		resolved = append(resolved, index)
	}
	return resolved, nil
}

func indicesForNames(labelNames, names []string) ([]int, error) {
	positions := make(map[string]int, len(names))
	for i, name := range names {
		positions[name] = i
	}
	indices := make([]int, 0, len(labelNames))
	for _, name := range labelNames {
		index, exists := positions[name]
		if !exists {
			return nil, errors.Annotatef(base.ErrInvalidInput, "unknown label name %q", name)
		}
		indices = append(indices, index)
	}
	return validateIndices(indices, len(names))
}

// readNamesFile reads a side-channel label name list, one name per line.
// Blank lines and lines starting with '#' are skipped.
func readNamesFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(base.ErrInvalidInput, "open label names file: %v", err)
	}
	defer file.Close()
	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	if len(names) == 0 {
		return nil, errors.Annotatef(base.ErrInvalidInput, "label names file %q is empty", path)
	}
	return names, nil
}

func resolveHeaderHint(names []string) ([]int, []string, error) {
	stripped := make([]string, len(names))
	var indices []int
	for i, name := range names {
		if strings.HasPrefix(name, HeaderHintPrefix) {
			indices = append(indices, i)
			stripped[i] = strings.TrimPrefix(name, HeaderHintPrefix)
		} else {
			stripped[i] = name
		}
	}
	if len(indices) == 0 {
		return nil, nil, errors.Annotate(base.ErrInvalidInput, "no label designation resolved")
	}
	return indices, stripped, nil
}
