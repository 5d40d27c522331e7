package fanout

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InlineDispatcher delivers on the caller's goroutine and swallows the result.
type InlineDispatcher struct {
	sink Sink
	log  *zap.Logger
}

func NewInlineDispatcher(sink Sink, log *zap.Logger) *InlineDispatcher {
	return &InlineDispatcher{sink: sink, log: log}
}

func (d *InlineDispatcher) Dispatch(ctx context.Context, req Request) {
	if req.SelfAction() {
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	metrics.FanoutDispatched.WithLabelValues(string(req.Type)).Inc()
	deliver(context.WithoutCancel(ctx), d.sink, d.log, req, "inline")
}
