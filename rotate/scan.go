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
	"os"
	"strings"
)

// IsPNG returns true if the name has a .png suffix, ignoring case.
func IsPNG(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".png")
}

// ListImages returns the names of the PNG entries directly in dir.
// Entries are not checked for being regular files.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if IsPNG(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
