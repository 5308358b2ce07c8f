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
	"log"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/logging/logadmin"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"

	"github.com/BrunoReboul/gcptopo/utilities/cai"
	"github.com/BrunoReboul/gcptopo/utilities/gcs"
	"github.com/BrunoReboul/gcptopo/utilities/glo"
	"github.com/BrunoReboul/gcptopo/utilities/gps"
	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"github.com/BrunoReboul/gcptopo/utilities/mon"
	"github.com/BrunoReboul/gcptopo/utilities/retention"
	"github.com/BrunoReboul/gcptopo/utilities/solution"
)

const microserviceName = "topocheck"

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Global structure for global variables reused across runs
type Global struct {
	ctx        context.Context
	initFailed bool
	initErr    error
	Settings   *solution.Settings
	Check      *Check
	Registerer prometheus.Registerer
}

// Initialize loads settings and builds the clients once per process
func Initialize(ctx context.Context, global *Global, settingsPath string, environmentName string) {
	global.ctx = ctx
	global.initFailed = false
	log.SetFlags(0)

	// err is pre-declared to avoid shadowing client.
	var err error
	fail := func(format string, a ...interface{}) {
		global.initFailed = true
		global.initErr = fmt.Errorf(format, a...)
		log.Println(logging.Entry{
			MicroserviceName: microserviceName,
			Environment:      environmentName,
			Severity:         "CRITICAL",
			Message:          "init failed",
			Description:      global.initErr.Error(),
		})
	}

	global.Settings, err = solution.Load(settingsPath, environmentName)
	if err != nil {
		fail("solution.Load %s: %w", settingsPath, err)
		return
	}
	settings := global.Settings
	logger := logging.Logger{
		MicroserviceName: microserviceName,
		InstanceName:     settings.InstanceName,
		Environment:      settings.Environment,
	}.With(CheckID(settings.ProjectID))
	if global.Registerer == nil {
		global.Registerer = prometheus.DefaultRegisterer
	}
	metrics := mon.NewMetrics(global.Registerer)

	var storageClient *storage.Client
	storageClient, err = storage.NewClient(ctx)
	if err != nil {
		fail("storage.NewClient: %w", err)
		return
	}
	var logadminClient *logadmin.Client
	logadminClient, err = logadmin.NewClient(ctx, settings.ProjectID)
	if err != nil {
		fail("logadmin.NewClient: %w", err)
		return
	}
	var assetClient *asset.Client
	assetClient, err = asset.NewClient(ctx)
	if err != nil {
		fail("asset.NewClient: %w", err)
		return
	}

	burst := int(settings.APIRequestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	source := &logsource.Source{
		Store:         gcs.NewStore(storageClient),
		Querier:       glo.NewQuerier(logadminClient),
		ProjectID:     settings.ProjectID,
		BucketName:    settings.LogBucketName,
		Category:      logsource.DefaultCategory,
		Limiter:       rate.NewLimiter(rate.Limit(settings.APIRequestsPerSecond), burst),
		RetryAttempts: int(settings.Retry.Attempts),
		RetryWait:     settings.RetryWait(),
		Logger:        logger,
		Metrics:       metrics,
	}
	manager := &retention.Manager{
		Deleter:   source.Store,
		Retention: settings.Retention(),
		Logger:    logger,
		Metrics:   metrics,
	}

	check := NewCheck(settings, source, manager)
	check.Logger = logger
	check.Metrics = metrics
	check.Enumerator = cai.NewEnumerator(assetClient, settings.AssetTypes)
	check.Reporter = LogReporter{Logger: logger}
	check.Credentials = func(ctx context.Context) error {
		_, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
		return err
	}
	check.Publisher = LogPublisher{Logger: logger}
	if settings.SnapshotTopicName != "" {
		var pubsubClient *pubsub.Client
		pubsubClient, err = pubsub.NewClient(ctx, settings.ProjectID)
		if err != nil {
			fail("pubsub.NewClient: %w", err)
			return
		}
		var topic *pubsub.Topic
		topic, err = gps.EnsureTopic(ctx, pubsubClient, settings.SnapshotTopicName)
		if err != nil {
			fail("gps.EnsureTopic %s: %w", settings.SnapshotTopicName, err)
			return
		}
		check.Publisher = gps.NewSnapshotPublisher(topic)
	}
	global.Check = check
	logger.Log(logging.Entry{
		Severity:    "NOTICE",
		Message:     "init done",
		Description: fmt.Sprintf("regions %v bucket %s", settings.Regions, source.Bucket()),
	})
}

// EntryPoint executes one run, it fails only when initialization failed
func EntryPoint(ctx context.Context, global *Global) (Result, error) {
	if global.initFailed || global.Check == nil {
		return Result{}, fmt.Errorf("topocheck not initialized: %v", global.initErr)
	}
	return global.Check.Run(ctx), nil
}
