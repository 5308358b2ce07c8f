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

package solution

import (
	"fmt"

	"github.com/BrunoReboul/gcptopo/utilities/ffo"
	"github.com/BrunoReboul/gcptopo/utilities/validater"
)

// Load reads a YAML settings file over the defaults, situates and validates it
func Load(path string, environmentName string) (*Settings, error) {
	settings := NewSettings()
	if err := ffo.ReadUnmarshalYAML(path, settings); err != nil {
		return nil, fmt.Errorf("ReadUnmarshalYAML %s: %w", path, err)
	}
	settings.Situate(environmentName)
	if err := validater.ValidateStruct(settings, "settings"); err != nil {
		return nil, err
	}
	return settings, nil
}
