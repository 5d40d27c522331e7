package fanout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/danevairena/SocialMediaBackend/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Worker drains the fan-out queue filled by QueueDispatcher.
type Worker struct {
	redisClient *redis.Client
	key         string
	sink        Sink
	log         *zap.Logger
	timeout     time.Duration
	pollTimeout time.Duration
}

func NewWorker(redisClient *redis.Client, key string, sink Sink, log *zap.Logger, timeout time.Duration) *Worker {
	if key == "" {
		key = DefaultQueueKey
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Worker{
		redisClient: redisClient,
		key:         key,
		sink:        sink,
		log:         log,
		timeout:     timeout,
		pollTimeout: time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info("notification fan-out worker started", zap.String("queue", w.key))
	for {
		if ctx.Err() != nil {
			w.log.Info("notification fan-out worker stopped")
			return
		}

		res, err := w.redisClient.BLPop(ctx, w.pollTimeout, w.key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			w.log.Error("fan-out queue pop failed, retrying", zap.Error(err))
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
			continue
		}

		// res[0] is the key, res[1] the payload
		if len(res) < 2 {
			continue
		}
		w.process(ctx, res[1])
	}
}

func (w *Worker) process(ctx context.Context, payload string) {
	var req Request
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		metrics.FanoutFailed.WithLabelValues("unknown", "decode").Inc()
		w.log.Error("invalid fan-out payload", zap.String("payload", payload), zap.Error(err))
		return
	}

	deliverCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()
	deliver(deliverCtx, w.sink, w.log, req, "worker")
}
