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

// Command topocheck runs the cloud topology check on a schedule
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BrunoReboul/gcptopo/services/topocheck"
)

func main() {
	args := checkArguments(os.Args[1:])
	if args.writeSettings != "" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var global topocheck.Global
	topocheck.Initialize(ctx, &global, args.settingsPath, args.environmentName)
	if global.Check == nil {
		os.Exit(1)
	}
	if args.forceFull {
		global.Check.ForceFull()
	}

	if address := global.Settings.MetricsAddress; address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: address, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("ERROR - metrics server %s: %v", address, err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	ticker := time.NewTicker(max(args.interval, time.Second))
	defer ticker.Stop()
	for {
		result, err := topocheck.EntryPoint(ctx, &global)
		if err != nil {
			log.Printf("ERROR - %v", err)
			os.Exit(1)
		}
		if args.once {
			if result.Status() == topocheck.Critical {
				os.Exit(2)
			}
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
