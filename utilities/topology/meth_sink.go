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

package topology

// StartSnapshot opens a new snapshot and forgets the previous one, seen set included
func (s *Sink) StartSnapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	s.startTime = s.now().UTC()
	s.components = nil
	s.componentIndex = make(map[string]int)
	s.relations = nil
	s.relationIndex = make(map[relationKey]int)
	s.seen = make(map[string]struct{})
	s.dropped = 0
}

// StopSnapshot closes the snapshot and returns it
func (s *Sink) StopSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := Snapshot{
		CheckID:    s.checkID,
		StartTime:  s.startTime,
		StopTime:   s.now().UTC(),
		Components: append([]Component(nil), s.components...),
		Relations:  append([]Relation(nil), s.relations...),
	}
	s.started = false
	s.seen = nil
	return snapshot
}

// EmitComponent adds or overwrites a component, last write wins
func (s *Sink) EmitComponent(id string, componentType string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.dropped++
		return
	}
	component := Component{ID: id, Type: componentType, Data: data}
	if i, ok := s.componentIndex[id]; ok {
		s.components[i] = component
		return
	}
	s.componentIndex[id] = len(s.components)
	s.components = append(s.components, component)
}

// EmitRelation adds or overwrites a relation, last write wins
func (s *Sink) EmitRelation(sourceID string, targetID string, relationType string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.dropped++
		return
	}
	relation := Relation{SourceID: sourceID, TargetID: targetID, Type: relationType, Data: data}
	key := relationKey{sourceID: sourceID, targetID: targetID, typ: relationType}
	if i, ok := s.relationIndex[key]; ok {
		s.relations[i] = relation
		return
	}
	s.relationIndex[key] = len(s.relations)
	s.relations = append(s.relations, relation)
}

// MarkSeen test-and-set on the run seen set
func (s *Sink) MarkSeen(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen == nil {
		return true
	}
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Seen reports whether key is in the run seen set
func (s *Sink) Seen(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[key]
	return ok
}

// Counts returns the number of components and relations of the current snapshot
func (s *Sink) Counts() (components int, relations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.components), len(s.relations)
}

// Dropped returns the number of emissions received outside a started snapshot
func (s *Sink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}
