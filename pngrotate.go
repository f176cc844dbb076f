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

package main

import (
	"flag"
	"log"
	"os"

	"github.com/aamcrae/pngrotate/rotate"
)

var configFile = flag.String("config", "", "YAML config file (optional)")
var dir = flag.String("dir", "./", "Directory containing PNG images")
var angle = flag.Int("angle", 90, "Rotation angle (degrees clockwise)")
var dryrun = flag.Bool("dryrun", false, "Decode and rotate, but do not save")
var trace = flag.Bool("trace", false, "Log image sizes")
var logDate = flag.Bool("logtime", false, "Log date and time")

func main() {
	flag.Parse()
	if !*logDate {
		// Turn off date/time tags on logs
		log.SetFlags(0)
	}
	conf := rotate.DefaultConfig()
	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			log.Fatalf("Can't read config %s: %v", *configFile, err)
		}
		conf, err = rotate.LoadConfig(data)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
	}
	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			conf.Dir = *dir
		case "angle":
			conf.Angle = *angle
		case "dryrun":
			conf.Dryrun = *dryrun
		case "trace":
			conf.Trace = *trace
		}
	})
	if err := rotate.Run(conf, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
