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
	"strings"

	"github.com/BrunoReboul/gcptopo/utilities/auditlog"
	"github.com/BrunoReboul/gcptopo/utilities/cai"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
)

func handleCloudFunction(event *auditlog.Event, emitter topology.Emitter) {
	function := event.GetMap("request", "function")
	name, _ := function["name"].(string)
	if name == "" {
		name = event.ResourceName
	}
	if name == "" {
		return
	}
	id := cai.GetFullResourceName(CloudFunctions, name)
	if !emitter.MarkSeen(SeenKey(id, event)) {
		return
	}
	emitter.EmitComponent(id, cai.GetComponentType("cloudfunctions.googleapis.com/CloudFunction"), componentData(event, function))
	if email, _ := function["serviceAccountEmail"].(string); email != "" {
		emitter.EmitRelation(id, serviceAccountID(event.ProjectID, email), UsesService, map[string]interface{}{})
	}
	if resource := event.GetString("request", "function", "eventTrigger", "resource"); strings.Contains(resource, "/topics/") {
		emitter.EmitRelation(id, cai.GetFullResourceName(PubSub, resource), IsTriggeredBy, map[string]interface{}{})
	}
}

func handleComputeInstance(event *auditlog.Event, emitter topology.Emitter) {
	if event.ResourceName == "" {
		return
	}
	id := cai.GetFullResourceName(Compute, event.ResourceName)
	if !emitter.MarkSeen(SeenKey(id, event)) {
		return
	}
	request := event.GetMap("request")
	emitter.EmitComponent(id, cai.GetComponentType("compute.googleapis.com/Instance"), componentData(event, request))
	for _, item := range event.GetSlice("request", "networkInterfaces") {
		networkInterface, _ := item.(map[string]interface{})
		if network, _ := networkInterface["network"].(string); network != "" {
			emitter.EmitRelation(id, computeLinkToID(network), UsesService, map[string]interface{}{})
		}
	}
}

func handleStorageBucket(event *auditlog.Event, emitter topology.Emitter) {
	if event.ResourceName == "" {
		return
	}
	id := cai.GetFullResourceName(Storage, event.ResourceName)
	if !emitter.MarkSeen(SeenKey(id, event)) {
		return
	}
	fields := map[string]interface{}{
		"name":     strings.TrimPrefix(event.ResourceName, "projects/_/buckets/"),
		"location": event.ResourceLabels["location"],
	}
	if labels := event.GetMap("request", "labels"); labels != nil {
		fields["labels"] = labels
	}
	emitter.EmitComponent(id, cai.GetComponentType("storage.googleapis.com/Bucket"), componentData(event, fields))
}

func handlePubSubTopic(event *auditlog.Event, emitter topology.Emitter) {
	if event.ResourceName == "" {
		return
	}
	id := cai.GetFullResourceName(PubSub, event.ResourceName)
	if !emitter.MarkSeen(SeenKey(id, event)) {
		return
	}
	fields := event.GetMap("request", "topic")
	if fields == nil {
		fields = event.GetMap("request")
	}
	emitter.EmitComponent(id, cai.GetComponentType("pubsub.googleapis.com/Topic"), componentData(event, fields))
}

func handlePubSubSubscription(event *auditlog.Event, emitter topology.Emitter) {
	if event.ResourceName == "" {
		return
	}
	id := cai.GetFullResourceName(PubSub, event.ResourceName)
	if !emitter.MarkSeen(SeenKey(id, event)) {
		return
	}
	fields := event.GetMap("request", "subscription")
	if fields == nil {
		fields = event.GetMap("request")
	}
	emitter.EmitComponent(id, cai.GetComponentType("pubsub.googleapis.com/Subscription"), componentData(event, fields))
	if topic, _ := fields["topic"].(string); topic != "" {
		emitter.EmitRelation(id, cai.GetFullResourceName(PubSub, topic), UsesService, map[string]interface{}{})
	}
}

func handleServiceAccount(event *auditlog.Event, emitter topology.Emitter) {
	email := event.GetString("response", "email")
	if email == "" {
		return
	}
	id := serviceAccountID(event.ProjectID, email)
	if !emitter.MarkSeen(SeenKey(id, event)) {
		return
	}
	emitter.EmitComponent(id, cai.GetComponentType("iam.googleapis.com/ServiceAccount"), componentData(event, event.GetMap("response")))
}

func serviceAccountID(projectID string, email string) string {
	return cai.GetFullResourceName(IAM, "projects/"+projectID+"/serviceAccounts/"+email)
}
