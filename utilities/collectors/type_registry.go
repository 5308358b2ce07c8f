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

package collectors

import (
	"github.com/BrunoReboul/gcptopo/utilities/auditlog"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
)

// Key identifies an event type
type Key struct {
	Service   string
	EventName string
}

// Handler turns one event into zero or more topology mutations
type Handler interface {
	Handle(event *auditlog.Event, emitter topology.Emitter)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(event *auditlog.Event, emitter topology.Emitter)

// Handle calls f
func (f HandlerFunc) Handle(event *auditlog.Event, emitter topology.Emitter) {
	f(event, emitter)
}

// Registry is the event type to handler table
type Registry struct {
	handlers map[Key]Handler
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Key]Handler)}
}
