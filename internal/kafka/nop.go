package kafka

import (
	"context"

	"github.com/Gunvolt24/oppify/internal/ports"
)

var _ ports.MessageConsumer = NopConsumer{}

// NopConsumer используется при OPPIFY_KAFKA_ENABLED=false: ждёт остановки и ничего не читает.
type NopConsumer struct{}

func (NopConsumer) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (NopConsumer) Close() error { return nil }
