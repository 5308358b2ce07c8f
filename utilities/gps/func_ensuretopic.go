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

package gps

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EnsureTopic check if a topic already exist, if not create it
func EnsureTopic(ctx context.Context, client *pubsub.Client, topicName string) (*pubsub.Topic, error) {
	topic := client.Topic(topicName)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("topic.Exists %s: %w", topicName, err)
	}
	if exists {
		return topic, nil
	}
	topic, err = client.CreateTopicWithConfig(ctx, topicName, &pubsub.TopicConfig{
		Labels: map[string]string{"name": strings.ToLower(topicName)},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return nil, fmt.Errorf("client.CreateTopic %s: %w", topicName, err)
		}
		topic = client.Topic(topicName)
	}
	return topic, nil
}
