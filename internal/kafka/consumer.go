package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/Gunvolt24/oppify/pkg/metrics"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — подмножество kafka.Reader, нужное консьюмеру.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// opportunitySaver — usecase, который декодирует, проверяет источник и сохраняет возможность.
type opportunitySaver interface {
	CreateFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — подписчик на поток возможностей от внешних агрегаторов.
type Consumer struct {
	reader         reader
	service        opportunitySaver
	log            ports.Logger
	processTimeout time.Duration
	retry          *backoff
	closeOnce      sync.Once
}

const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// NewConsumer — reader с ручным коммитом оффсетов; нулевые таймауты заменяются значениями по умолчанию.
func NewConsumer(cfg *ConsumerConfig, service opportunitySaver, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, defaultProcessTimeout),
		retry: newBackoff(
			orDefault(cfg.RetryInitial, defaultRetryInitial),
			orDefault(cfg.RetryMax, defaultRetryMax),
			rand.New(rand.NewSource(time.Now().UnixNano())),
		),
	}
}

// Run — основной цикл чтения. Оффсет коммитится после сохранения или после
// окончательного отказа (битый JSON, недоверенный источник). Временная ошибка
// повторяется на том же сообщении с нарастающей задержкой: следующий fetch
// сдвинул бы позицию reader, и последующий коммит перешагнул бы несохранённое.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.retry.next()
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, wait)
			if !sleep(ctx, wait) {
				return ctx.Err()
			}
			continue
		}

		c.retry.reset()
		metrics.IngestMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.processUntilDone(ctx, rc.Topic, &msg); err != nil {
			return err
		}
	}
}

// processUntilDone — обрабатывает msg до успеха или окончательного отказа и коммитит.
// Возвращает ошибку только при отмене контекста; оффсет в этом случае не коммитится.
func (c *Consumer) processUntilDone(ctx context.Context, topic string, msg *kafka.Message) error {
	for {
		if c.handleMessage(ctx, topic, msg) {
			c.commitSafely(ctx, msg)
			c.retry.reset()
			return nil
		}
		if !sleep(ctx, c.retry.next()) {
			return ctx.Err()
		}
	}
}

// Close — закрывает reader; повторные вызовы безопасны.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
