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
	"sort"

	"github.com/BrunoReboul/gcptopo/utilities/auditlog"
	"github.com/BrunoReboul/gcptopo/utilities/str"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
)

// Register binds handler to each event name of a service
func (r *Registry) Register(service string, handler Handler, eventNames ...string) *Registry {
	for _, eventName := range eventNames {
		r.handlers[Key{Service: service, EventName: eventName}] = handler
	}
	return r
}

// Lookup returns the handler of an exact service and event name pair
func (r *Registry) Lookup(service string, eventName string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	handler, ok := r.handlers[Key{Service: service, EventName: eventName}]
	return handler, ok
}

// Dispatch hands the event to its handler and reports whether one was found
func (r *Registry) Dispatch(event *auditlog.Event, emitter topology.Emitter) bool {
	handler, ok := r.Lookup(event.Service, event.EventName)
	if !ok {
		return false
	}
	handler.Handle(event, emitter)
	return true
}

// Restrict returns a registry limited to the listed services, all of them when the list is empty
func (r *Registry) Restrict(services []string) *Registry {
	restricted := NewRegistry()
	for key, handler := range r.handlers {
		if len(services) == 0 || str.Find(services, key.Service) {
			restricted.handlers[key] = handler
		}
	}
	return restricted
}

// Len returns the number of registered event types
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.handlers)
}

// Keys returns the registered event types sorted by service then event name
func (r *Registry) Keys() (keys []Key) {
	for key := range r.handlers {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Service != keys[j].Service {
			return keys[i].Service < keys[j].Service
		}
		return keys[i].EventName < keys[j].EventName
	})
	return keys
}
