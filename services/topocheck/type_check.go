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

package topocheck

import (
	"context"
	"sync"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/collectors"
	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"github.com/BrunoReboul/gcptopo/utilities/mon"
	"github.com/BrunoReboul/gcptopo/utilities/retention"
	"github.com/BrunoReboul/gcptopo/utilities/solution"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
	"github.com/google/uuid"
)

// State of a check instance
type State int

// States
const (
	Idle State = iota
	RunningFull
	RunningIncremental
	Reporting
)

func (s State) String() string {
	switch s {
	case RunningFull:
		return "RunningFull"
	case RunningIncremental:
		return "RunningIncremental"
	case Reporting:
		return "Reporting"
	}
	return "Idle"
}

// Service check names
const (
	ExecuteCheck = "gcp_topology.execute"
	UpdateCheck  = "gcp_topology.update"
)

// Enumerator emits the components of a full enumeration
type Enumerator interface {
	Enumerate(ctx context.Context, projectID string, regions []string, emitter topology.Emitter) (int, error)
}

// Publisher hands a finished snapshot over
type Publisher interface {
	Publish(ctx context.Context, snapshot topology.Snapshot, runID string) error
}

// Reporter receives the service checks of a run
type Reporter interface {
	Report(ctx context.Context, serviceCheck ServiceCheck)
}

// Check is one topology check instance, runs never overlap
type Check struct {
	ID          string
	Settings    *solution.Settings
	Source      *logsource.Source
	Retention   *retention.Manager
	Enumerator  Enumerator
	Publisher   Publisher
	Reporter    Reporter
	Credentials func(ctx context.Context) error
	Logger      logging.Logger
	Metrics     *mon.Metrics
	Now         func() time.Time
	NewRunID    func() string

	runMu            sync.Mutex
	mu               sync.Mutex
	registry         *collectors.Registry
	state            State
	lastFullTopology time.Time
	forceFull        bool
}

// NewCheck returns a check wired with the production registry
func NewCheck(settings *solution.Settings, source *logsource.Source, manager *retention.Manager) *Check {
	return &Check{
		ID:        CheckID(settings.ProjectID),
		Settings:  settings,
		Source:    source,
		Retention: manager,
		registry:  collectors.Default(),
		Now:       time.Now,
		NewRunID:  uuid.NewString,
	}
}

// CheckID names the check of a project
func CheckID(projectID string) string {
	return "gcp_topology:" + projectID
}

// SetRegistry swaps the whole collector registry, it takes effect at the next run
func (c *Check) SetRegistry(registry *collectors.Registry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry = registry
}

// Registry returns the collector registry, the production one when none was set
func (c *Check) Registry() *collectors.Registry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registry == nil {
		c.registry = collectors.Default()
	}
	return c.registry
}

// ForceFull makes the next run a full one
func (c *Check) ForceFull() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forceFull = true
}

// State returns the current state
func (c *Check) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastFullTopology returns the start time of the last successful full run, zero when none
func (c *Check) LastFullTopology() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFullTopology
}

// MustRunFull tells whether a run starting at now is a full one
func (c *Check) MustRunFull(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.forceFull || c.lastFullTopology.IsZero() {
		return true
	}
	return !now.Before(c.lastFullTopology.Add(c.Settings.FullRefreshInterval()))
}

func (c *Check) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

func (c *Check) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}

func (c *Check) newRunID() string {
	if c.NewRunID == nil {
		return uuid.NewString()
	}
	return c.NewRunID()
}
