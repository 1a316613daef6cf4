package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff — экспоненциальная задержка с equal-jitter: половина фиксирована, половина случайна.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, maxDelay time.Duration, rnd *rand.Rand) *backoff {
	return &backoff{initial: initial, max: maxDelay, current: initial, rnd: rnd}
}

// next — задержка для текущей попытки; следующая удваивается до max.
func (b *backoff) next() time.Duration {
	d := b.jitter(b.current)
	b.current = min(b.current*2, b.max)
	return d
}

func (b *backoff) reset() { b.current = b.initial }

func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// sleep — false, если контекст отменён раньше.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
