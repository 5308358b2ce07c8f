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

/*
Package services structure

# All service packages share a consistent structure

# Two functions and one type

Initialize function

  - Is executed once per process
  - Cache objects expensive to create, like provider clients
  - Load and validate settings once
  - Cached objects and settings are exposed in one variable of type Global

Global type

  - A struct carrying the cached objects and settings prepared by Initialize and used by EntryPoint

EntryPoint function

  - Is executed on every scheduled run
  - Fails only when Initialize failed, run outcomes are reported as service checks
*/
package services
