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

package dataset

import (
	"strconv"
)

// Summary renders the aggregate measures as ordered name/value rows.
func (d *Dataset) Summary() [][]string {
	m := d.measures
	return [][]string{
		{"Instances", strconv.Itoa(m.NumInstances)},
		{"Labels", strconv.Itoa(m.NumLabels)},
		{"Cardinality", formatFloat(m.Cardinality)},
		{"Density", formatFloat(m.Density)},
		{"DistinctLabelsets", strconv.Itoa(m.DistinctLabelsets)},
		{"PropUniqueLabelsets", formatFloat(m.PropUniqueLabelsets)},
		{"MeanIR", formatFloat(m.MeanIR)},
		{"MaxIR", formatFloat(m.MaxIR)},
		{"MeanSCUMBLE", formatFloat(m.MeanSCUMBLE)},
		{"DegenerateLabels", strconv.Itoa(m.NumDegenerate)},
	}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}
