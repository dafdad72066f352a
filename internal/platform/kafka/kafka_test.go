package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/platform/config"
)

func TestNew_NoBrokers(t *testing.T) {
	client, err := New(config.KafkaConfig{IndexTopic: "account-index"})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNew_WithBrokers(t *testing.T) {
	// kgo does not dial until the first request.
	client, err := New(config.KafkaConfig{
		Brokers:    []string{"127.0.0.1:1"},
		IndexTopic: "account-index",
		ClientID:   "roster-test",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	client.Close()
}
