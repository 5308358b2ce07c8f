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
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/collectors"
	"github.com/BrunoReboul/gcptopo/utilities/erm"
	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"github.com/BrunoReboul/gcptopo/utilities/mon"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
	"golang.org/x/sync/errgroup"
)

// Run executes one full or incremental run and reports it, it never panics
func (c *Check) Run(ctx context.Context) (result Result) {
	if !c.runMu.TryLock() {
		// the state belongs to the run in progress
		skipped := Result{Checks: []ServiceCheck{{
			Name:    UpdateCheck,
			CheckID: c.ID,
			Status:  Warning,
			Message: "previous run still in progress, run skipped",
		}}}
		c.report(ctx, c.Logger, skipped)
		return skipped
	}
	defer c.runMu.Unlock()
	if c.Metrics == nil {
		c.Metrics = mon.Discard()
	}
	if c.Source.Metrics == nil {
		c.Source.Metrics = c.Metrics
	}

	result.RunID = c.newRunID()
	result.StartTime = c.now()
	result.Full = c.MustRunFull(result.StartTime)
	logger := c.Logger.WithRun(result.RunID)
	kind := "incremental"
	if result.Full {
		kind = "full"
		c.setState(RunningFull)
	} else {
		c.setState(RunningIncremental)
	}
	logger.Log(logging.Entry{Severity: "NOTICE", Message: "run start", RunKind: kind, Now: &result.StartTime})

	sink := topology.NewSink(c.ID)
	sink.StartSnapshot()
	stopped := false
	defer func() {
		if r := recover(); r != nil {
			message := fmt.Sprintf("run aborted by a panic: %v", r)
			logger.Log(logging.Entry{Severity: "CRITICAL", Message: message, Description: string(debug.Stack()), RunKind: kind})
			result.Checks = c.criticalChecks(result, message)
		}
		if !stopped {
			result.Snapshot = sink.StopSnapshot()
		}
		result.StopTime = c.now()
		c.setState(Reporting)
		c.report(ctx, logger, result)
		c.Metrics.RunDuration.WithLabelValues(kind).Observe(result.StopTime.Sub(result.StartTime).Seconds())
		logger.Log(logging.Entry{
			Severity:       "NOTICE",
			Message:        fmt.Sprintf("run finish %s", result.Status()),
			RunKind:        kind,
			EventCount:     result.Handled,
			ObjectCount:    len(result.Snapshot.Components),
			LatencySeconds: result.StopTime.Sub(result.StartTime).Seconds(),
		})
		c.setState(Idle)
	}()

	if c.Credentials != nil {
		if err := c.Credentials(ctx); err != nil {
			result.Checks = c.criticalChecks(result, fmt.Sprintf("credentials unavailable: %v", err))
			return result
		}
	}

	registry := c.Registry().Restrict(c.Settings.APIsToRun)
	cutoff := logsource.Cutoff(c.LastFullTopology(), result.StartTime, c.Settings.IncrementalLookback())
	result.Regions = c.collect(ctx, cutoff, registry, sink, &result)

	var enumerationErr error
	if result.Full && c.Enumerator != nil {
		result.Enumerated, enumerationErr = c.Enumerator.Enumerate(ctx, c.Settings.ProjectID, c.Settings.Regions, sink)
		if enumerationErr != nil {
			logger.Log(logging.Entry{
				Severity:    "WARNING",
				Message:     "full enumeration failed",
				Description: enumerationErr.Error(),
				ErrorClass:  erm.Classify(enumerationErr).String(),
				RunKind:     kind,
			})
		}
	}

	components, _ := sink.Counts()
	result.Snapshot = sink.StopSnapshot()
	stopped = true
	var publishErr error
	if c.Publisher != nil && ctx.Err() == nil {
		publishErr = c.Publisher.Publish(ctx, result.Snapshot, result.RunID)
		if publishErr != nil {
			logger.Log(logging.Entry{Severity: "WARNING", Message: "snapshot publish failed", Description: publishErr.Error(), RunKind: kind})
		}
	}
	result.Checks = c.evaluate(ctx, result, components, enumerationErr, publishErr)
	if execute, ok := result.Check(ExecuteCheck); ok && execute.Status == OK {
		c.mu.Lock()
		c.lastFullTopology = result.StartTime
		c.forceFull = false
		c.mu.Unlock()
	}
	return result
}

// collect reads every region concurrently then dispatches in region order
func (c *Check) collect(ctx context.Context, cutoff time.Time, registry *collectors.Registry, sink *topology.Sink, result *Result) []RegionOutcome {
	regions := c.Settings.Regions
	batches := make([]*logsource.Batch, len(regions))
	errs := make([]error, len(regions))
	var g errgroup.Group
	for i, region := range regions {
		i, region := i, region
		g.Go(func() error {
			batches[i], errs[i] = c.Source.Collect(ctx, region, cutoff)
			return nil
		})
	}
	_ = g.Wait()

	outcomes := make([]RegionOutcome, len(regions))
	for i, region := range regions {
		outcome := RegionOutcome{Region: region, Err: errs[i]}
		batch := batches[i]
		if batch != nil {
			outcome.Path = batch.Path
			outcome.FallbackReason = batch.FallbackReason
			outcome.Events = len(batch.Events)
			outcome.FailedObjects = batch.FailedObjects
			for _, event := range batch.Events {
				if registry.Dispatch(event, sink) {
					result.Handled++
					c.Metrics.EventsDispatched.WithLabelValues("handled").Inc()
				} else {
					result.Ignored++
					c.Metrics.EventsDispatched.WithLabelValues("ignored").Inc()
				}
			}
			if errs[i] == nil && batch.Path == logsource.PathBucket && c.Retention != nil {
				outcome.Deleted, _ = c.Retention.Cleanup(ctx, batch.Bucket, batch.Manifest, result.StartTime)
			}
		}
		outcomes[i] = outcome
	}
	return outcomes
}

func (c *Check) evaluate(ctx context.Context, result Result, components int, enumerationErr error, publishErr error) (checks []ServiceCheck) {
	var failed []string
	var degraded []string
	for _, outcome := range result.Regions {
		if outcome.Err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", outcome.Region, outcome.Err))
			continue
		}
		if outcome.FailedObjects > 0 {
			degraded = append(degraded, fmt.Sprintf("%s: %d log objects could not be read", outcome.Region, outcome.FailedObjects))
		}
	}
	canceled := ctx.Err() != nil

	update := ServiceCheck{Name: UpdateCheck, CheckID: c.ID, RunID: result.RunID, Status: OK, Tags: c.tags(result)}
	switch {
	case canceled:
		update.Status = Warning
		update.Message = "run canceled, snapshot is partial"
	case len(result.Regions) > 0 && len(failed) == len(result.Regions) && components == 0:
		update.Status = Critical
		update.Message = "no region could obtain events: " + strings.Join(failed, "; ")
	case len(failed) > 0 || len(degraded) > 0:
		update.Status = Warning
		update.Message = strings.Join(append(failed, degraded...), "; ")
	case publishErr != nil:
		update.Status = Warning
		update.Message = fmt.Sprintf("snapshot not published: %v", publishErr)
	}

	if !result.Full {
		return []ServiceCheck{update}
	}
	execute := ServiceCheck{Name: ExecuteCheck, CheckID: c.ID, RunID: result.RunID, Status: OK, Tags: c.tags(result)}
	switch {
	case canceled:
		execute.Status = Warning
		execute.Message = "run canceled, snapshot is partial"
	case enumerationErr != nil && components == 0:
		execute.Status = Critical
		execute.Message = fmt.Sprintf("full enumeration failed: %v", enumerationErr)
	case enumerationErr != nil:
		execute.Status = Warning
		execute.Message = fmt.Sprintf("full enumeration failed: %v", enumerationErr)
	}
	return []ServiceCheck{execute, update}
}

func (c *Check) criticalChecks(result Result, message string) []ServiceCheck {
	update := ServiceCheck{Name: UpdateCheck, CheckID: c.ID, RunID: result.RunID, Status: Critical, Message: message, Tags: c.tags(result)}
	if !result.Full {
		return []ServiceCheck{update}
	}
	execute := update
	execute.Name = ExecuteCheck
	return []ServiceCheck{execute, update}
}

func (c *Check) tags(result Result) map[string]string {
	tags := map[string]string{"project_id": c.Settings.ProjectID}
	for _, outcome := range result.Regions {
		if outcome.FallbackReason != logsource.NoFallback {
			tags["fallback_"+outcome.Region] = string(outcome.FallbackReason)
		}
	}
	return tags
}

func (c *Check) report(ctx context.Context, logger logging.Logger, result Result) {
	metrics := c.Metrics
	if metrics == nil {
		metrics = mon.Discard()
	}
	for _, serviceCheck := range result.Checks {
		metrics.RunStatus.WithLabelValues(serviceCheck.Name).Set(float64(serviceCheck.Status))
		if c.Reporter != nil {
			c.Reporter.Report(ctx, serviceCheck)
		}
	}
}
