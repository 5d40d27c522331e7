package fanout

import (
	"context"
	"sync"
	"time"

	"github.com/danevairena/SocialMediaBackend/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AsyncDispatcher delivers each request on its own goroutine, bounded by timeout.
type AsyncDispatcher struct {
	sink    Sink
	log     *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAsyncDispatcher(sink Sink, log *zap.Logger, timeout time.Duration) *AsyncDispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AsyncDispatcher{sink: sink, log: log, timeout: timeout}
}

func (d *AsyncDispatcher) Dispatch(_ context.Context, req Request) {
	if req.SelfAction() {
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	metrics.FanoutDispatched.WithLabelValues(string(req.Type)).Inc()
	d.spawn(req, "async")
}

// spawn detaches from the request context; the triggering request may already be finished.
func (d *AsyncDispatcher) spawn(req Request, stage string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		deliver(ctx, d.sink, d.log, req, stage)
	}()
}

// Wait blocks until every delivery started so far has finished.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}
