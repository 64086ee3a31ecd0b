package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InitClient creates the Pub/Sub client and makes sure the capability events
// topic exists.
type InitClient struct {
	Logger      *log.Logger `resolve:""`
	ProjectID   string      `config:"PUBSUB_PROJECT_ID"`
	TopicID     string      `config:"CAPABILITY_EVENTS_TOPIC_ID" default:"capability-events"`
	CreateTopic bool        `config:"PUBSUB_CREATE_TOPIC" default:"false"`
	client      *pubsubV2.Client
}

// Initialize registers the *pubsubV2.Client.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	if i.CreateTopic {
		if err := ensureTopic(ctx, i.client, i.ProjectID, i.TopicID); err != nil {
			return ctx, err
		}
		i.Logger.Printf("InitClient: topic %s is ready", i.TopicID)
	}

	depend.Register(i.client)
	return ctx, nil
}

// Close closes the client.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

// ensureTopic creates the topic unless it already exists.
func ensureTopic(ctx context.Context, client *pubsubV2.Client, projectID, topicID string) error {
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: fmt.Sprintf("projects/%s/topics/%s", projectID, topicID),
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create topic %s: %w", topicID, err)
	}
	return nil
}
