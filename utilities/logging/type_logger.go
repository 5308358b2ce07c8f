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

package logging

import "log"

var std = log.New(log.Writer(), "", 0)

// Logger stamps the identity fields on every entry it prints
type Logger struct {
	MicroserviceName string
	InstanceName     string
	Environment      string
	CheckID          string
	RunID            string
	Print            func(v ...interface{})
}

// Log completes the entry with the logger identity and prints it
func (l Logger) Log(e Entry) {
	e.MicroserviceName = l.MicroserviceName
	e.InstanceName = l.InstanceName
	e.Environment = l.Environment
	if e.CheckID == "" {
		e.CheckID = l.CheckID
	}
	if e.RunID == "" {
		e.RunID = l.RunID
	}
	if l.Print == nil {
		std.Println(e)
		return
	}
	l.Print(e)
}

// With returns a copy of the logger bound to another check id
func (l Logger) With(checkID string) Logger {
	l.CheckID = checkID
	return l
}

// WithRun returns a copy of the logger bound to a run id
func (l Logger) WithRun(runID string) Logger {
	l.RunID = runID
	return l
}
