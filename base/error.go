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

package base

import (
	"github.com/juju/errors"
)

var (
	// ErrInvalidInput reports malformed or missing construction arguments,
	// such as a label set that cannot be resolved by any designation rule.
	ErrInvalidInput = errors.New("invalid input")

	// ErrShapeMismatch reports evaluation matrices of differing dimensions.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrRequiresScores reports a ranking metric requested on purely binary
	// predictions.
	ErrRequiresScores = errors.New("requires real-valued scores")
)
