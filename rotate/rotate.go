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
	"image"
	"io"
	"log"
	"path/filepath"

	"github.com/aamcrae/pngrotate/images"
)

// Run rotates every PNG image in the configured directory,
// reporting each file to out after it is saved.
func Run(conf Config, out io.Writer) error {
	names, err := ListImages(conf.Dir)
	if err != nil {
		return err
	}
	rep := NewReporter(out)
	for _, name := range names {
		path := filepath.Join(conf.Dir, name)
		if conf.Dryrun {
			if _, err := rotateImage(path, conf.Angle, conf.Trace); err != nil {
				return err
			}
			rep.Checked(name)
			continue
		}
		if err := rotateFile(path, conf.Angle, conf.Trace); err != nil {
			return err
		}
		rep.Rotated(name)
	}
	return nil
}

// RotateFile rotates the image in path clockwise by angle degrees,
// overwriting the file.
func RotateFile(path string, angle int) error {
	return rotateFile(path, angle, false)
}

func rotateFile(path string, angle int, trace bool) error {
	img, err := rotateImage(path, angle, trace)
	if err != nil {
		return err
	}
	return images.SaveImage(path, img)
}

func rotateImage(path string, angle int, trace bool) (image.Image, error) {
	img, err := images.ReadImage(path)
	if err != nil {
		return nil, err
	}
	result := images.RotateImage(img, float64(angle))
	if trace {
		log.Printf("%s: %v -> %v", path, img.Bounds().Size(), result.Bounds().Size())
	}
	return result, nil
}
