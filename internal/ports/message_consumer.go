package ports

import "context"

// MessageConsumer — фоновый транспорт (Kafka ingest), управляемый жизненным циклом App.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
