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

// Package floats provides float32 vector helpers shared by the statistics
// and evaluation engines.
package floats

import "github.com/chewxy/math32"

// Sum returns the sum of a vector.
func Sum(a []float32) (ret float32) {
	for _, v := range a {
		ret += v
	}
	return
}

// Mean returns the arithmetic mean of a vector. The mean of an empty vector
// is NaN.
func Mean(a []float32) float32 {
	if len(a) == 0 {
		return math32.NaN()
	}
	return Sum(a) / float32(len(a))
}

// MulConst multiplies a vector by a constant: dst = dst * c
func MulConst(dst []float32, c float32) {
	for i := range dst {
		dst[i] *= c
	}
}

// Prod returns the product of a vector. The product of an empty vector is 1.
func Prod(a []float32) float32 {
	ret := float32(1)
	for _, v := range a {
		ret *= v
	}
	return ret
}
