// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rotate

import (
	"fmt"
	"io"
)

// Reporter writes one progress line per processed file.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Rotated reports a file that has been rotated and saved.
func (r *Reporter) Rotated(name string) {
	fmt.Fprintf(r.w, "Rotated: %s\n", name)
}

// Checked reports a file that was decoded and rotated during a dry run.
func (r *Reporter) Checked(name string) {
	fmt.Fprintf(r.w, "Checked: %s\n", name)
}
