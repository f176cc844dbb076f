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

// Package rotate rotates every PNG image in a directory, overwriting
// each file in place.
//
// Processing is a single sequential pass:
//
//	ListImages(dir)            scan, keep names ending in .png (any case)
//	  -> RotateFile(path)      decode, rotate, re-encode over the original
//	  -> Reporter.Rotated()    "Rotated: <name>" on the output
//
// The first error stops the run. Files rotated before the error stay
// rotated, and files after it are not touched.
package rotate

import (
	"gopkg.in/yaml.v3"
)

const defaultDir = "./"
const defaultAngle = 90

// Config holds the settings for a run.
type Config struct {
	Dir    string `yaml:"directory"` // Directory holding the images
	Angle  int    `yaml:"angle"`     // Degrees clockwise
	Dryrun bool   `yaml:"dryrun"`    // If true, decode and rotate but do not write
	Trace  bool   `yaml:"trace"`     // If true, log image sizes
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{Dir: defaultDir, Angle: defaultAngle}
}

// LoadConfig decodes the 'rotate' section of a YAML config.
// Settings missing from the section keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	conf := struct {
		Rotate Config `yaml:"rotate"`
	}{Rotate: DefaultConfig()}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, err
	}
	if conf.Rotate.Dir == "" {
		conf.Rotate.Dir = defaultDir
	}
	return conf.Rotate, nil
}
