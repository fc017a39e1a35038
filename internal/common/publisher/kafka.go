package publisher

import (
	"time"

	"github.com/Shopify/sarama"

	"github.com/safafin/go-loan-api/internal/config"
)

const defaultBrokerTimeout = 2 * time.Second

// NewKafkaSyncProducer builds the producer the loan event publisher writes
// through. It is synchronous on purpose: origination and settlement publish
// after their transaction commits, and a slow broker must surface as a logged
// publish failure instead of silently queueing events.
func NewKafkaSyncProducer(cfg config.Broker) (sarama.SyncProducer, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultBrokerTimeout
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Timeout = timeout
	saramaCfg.Net.DialTimeout = timeout
	saramaCfg.Net.ReadTimeout = timeout
	saramaCfg.Net.WriteTimeout = timeout

	return sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
}
