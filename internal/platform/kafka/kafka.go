// Package kafka builds the franz-go client used by the search index producer.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"roster/internal/platform/config"
)

// New returns nil, nil when no brokers are configured.
func New(cfg config.KafkaConfig, extra ...kgo.Opt) (*kgo.Client, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.DefaultProduceTopic(cfg.IndexTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		// Records for one account id always land on one partition so index
		// and remove documents are consumed in the order they were produced.
		kgo.RecordPartitioner(kgo.StickyKeyPartitioner(nil)),
	}
	opts = append(opts, extra...)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return client, nil
}

// EnsureTopic creates topic if it does not exist.
func EnsureTopic(ctx context.Context, client *kgo.Client, topic string, partitions int32, replicas int16, logger *slog.Logger) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, partitions, replicas, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, t := range resp {
		if t.Err == nil {
			if logger != nil {
				logger.InfoContext(ctx, "kafka topic created", "topic", t.Topic, "partitions", partitions)
			}
			continue
		}
		if errors.Is(t.Err, kerr.TopicAlreadyExists) {
			continue
		}
		return fmt.Errorf("create topic %s: %w", t.Topic, t.Err)
	}
	return nil
}

// Health pings the seed brokers. Used by /readyz.
func Health(ctx context.Context, client *kgo.Client) error {
	return client.Ping(ctx)
}
