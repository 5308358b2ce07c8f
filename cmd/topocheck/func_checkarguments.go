// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/ffo"
	"github.com/BrunoReboul/gcptopo/utilities/solution"
)

type arguments struct {
	settingsPath    string
	environmentName string
	once            bool
	forceFull       bool
	interval        time.Duration
	writeSettings   string
}

// checkArguments parses the command line, it exits on invalid combinations
func checkArguments(args []string) (a arguments) {
	flags := flag.NewFlagSet("topocheck", flag.ExitOnError)
	flags.StringVar(&a.settingsPath, "settings", solution.SettingsFileName, "Path to the YAML settings file")
	flags.StringVar(&a.environmentName, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flags.BoolVar(&a.once, "once", false, "execute one run then exit")
	flags.BoolVar(&a.forceFull, "force-full", false, "make the first run a full run")
	flags.DurationVar(&a.interval, "interval", 5*time.Minute, "delay between two runs")
	flags.StringVar(&a.writeSettings, "write-settings", "", "write the default settings to this path then exit")
	if err := flags.Parse(args); err != nil {
		log.Fatalln(err)
	}
	if a.writeSettings != "" {
		if err := ffo.MarshalYAMLWrite(a.writeSettings, solution.NewSettings()); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("default settings written to %s\n", a.writeSettings)
		return a
	}
	if !a.once && a.interval <= 0 {
		log.Fatalln("interval must be positive")
	}
	return a
}
