package config

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// NewWriter builds a writer for the order event topic. Returns nil when
// no brokers are configured, which disables publishing.
func (c KafkaConfig) NewWriter() *kafka.Writer {
	if c.Brokers == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(c.Brokers, ",")...),
		Topic:                  c.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
