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

// Service names as found in audit log protoPayload.serviceName
const (
	CloudFunctions = "cloudfunctions.googleapis.com"
	Compute        = "compute.googleapis.com"
	Storage        = "storage.googleapis.com"
	PubSub         = "pubsub.googleapis.com"
	IAM            = "iam.googleapis.com"
)

// Relation types
const (
	UsesService   = "uses-service"
	IsTriggeredBy = "is-triggered-by"
)

// Default returns a new registry holding the production handlers
func Default() *Registry {
	return NewRegistry().
		Register(CloudFunctions, HandlerFunc(handleCloudFunction),
			"google.cloud.functions.v1.CloudFunctionsService.CreateFunction",
			"google.cloud.functions.v1.CloudFunctionsService.UpdateFunction").
		Register(Compute, HandlerFunc(handleComputeInstance),
			"v1.compute.instances.insert",
			"v1.compute.instances.setMachineType",
			"v1.compute.instances.setLabels").
		Register(Storage, HandlerFunc(handleStorageBucket),
			"storage.buckets.create",
			"storage.buckets.update").
		Register(PubSub, HandlerFunc(handlePubSubTopic),
			"google.pubsub.v1.Publisher.CreateTopic",
			"google.pubsub.v1.Publisher.UpdateTopic").
		Register(PubSub, HandlerFunc(handlePubSubSubscription),
			"google.pubsub.v1.Subscriber.CreateSubscription",
			"google.pubsub.v1.Subscriber.UpdateSubscription").
		Register(IAM, HandlerFunc(handleServiceAccount),
			"google.iam.admin.v1.CreateServiceAccount",
			"google.iam.admin.v1.PatchServiceAccount")
}
