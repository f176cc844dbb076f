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

// Package images reads, writes and rotates image files.
package images

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when a file suffix does not select an encoder.
var ErrUnknownFormat = errors.New("unknown image format")

// Read an image from a file.
// The file is closed before returning, whether or not decoding succeeded.
func ReadImage(name string) (image.Image, error) {
	inf, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer inf.Close()
	img, _, err := image.Decode(inf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// Save the image, using the suffix to select the type of image.
// An existing file is truncated and overwritten in place.
func SaveImage(name string, img image.Image) error {
	var enc func(*os.File) error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		enc = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		enc = func(f *os.File) error { return jpeg.Encode(f, img, nil) }
	case ".gif":
		enc = func(f *os.File) error { return gif.Encode(f, img, nil) }
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
	of, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := enc(of); err != nil {
		of.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return of.Close()
}
