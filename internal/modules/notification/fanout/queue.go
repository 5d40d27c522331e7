package fanout

import (
	"context"
	"encoding/json"

	"github.com/danevairena/SocialMediaBackend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultQueueKey = "notification_fanout_queue"

// QueueDispatcher pushes requests onto a Redis list for a Worker to drain.
// When the push fails the request is delivered through the fallback instead.
type QueueDispatcher struct {
	redisClient *redis.Client
	key         string
	fallback    *AsyncDispatcher
	log         *zap.Logger
}

func NewQueueDispatcher(redisClient *redis.Client, key string, fallback *AsyncDispatcher, log *zap.Logger) *QueueDispatcher {
	if key == "" {
		key = DefaultQueueKey
	}
	return &QueueDispatcher{
		redisClient: redisClient,
		key:         key,
		fallback:    fallback,
		log:         log,
	}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, req Request) {
	if req.SelfAction() {
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	metrics.FanoutDispatched.WithLabelValues(string(req.Type)).Inc()

	payload, err := json.Marshal(req)
	if err == nil {
		err = d.redisClient.RPush(context.WithoutCancel(ctx), d.key, payload).Err()
	}
	if err != nil {
		d.log.Warn("fan-out enqueue failed, delivering directly",
			zap.String("request_id", req.ID),
			zap.String("queue", d.key),
			zap.Error(err),
		)
		d.fallback.spawn(req, "fallback")
	}
}
