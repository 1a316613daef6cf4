package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/pkg/metrics"
	"github.com/Gunvolt24/oppify/pkg/telemetry"
)

// handleMessage обрабатывает одно сообщение и определяет, нужно ли коммитить оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctx, span := telemetry.Tracer().Start(ctx, "kafka.consume "+topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.destination.name", topic),
			attribute.Int("messaging.kafka.partition", msg.Partition),
			attribute.Int64("messaging.kafka.offset", msg.Offset),
		),
	)
	defer span.End()

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.CreateFromMessage(ctxTimeout, msg.Value)
	cancel()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	switch {
	case err == nil:
		metrics.IngestMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case isPermanent(err):
		// Повторная доставка ничего не изменит: коммитим и пропускаем
		metrics.IngestMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "rejected message offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		// БД/сеть/таймаут: НЕ коммитим, повтор того же сообщения
		metrics.IngestMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed offset=%d: %v (retrying same message)", msg.Offset, err)
		return false
	}
}

// isPermanent — ошибка относится к содержимому сообщения, а не к инфраструктуре.
func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrInvalidOpportunity) ||
		errors.Is(err, domain.ErrInvalidSource) ||
		errors.Is(err, domain.ErrUnknownType)
}

// commitSafely — ошибка коммита только логируется: сообщение придёт повторно.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}
