// Package fanout delivers notification requests produced as a side effect of
// social actions. Delivery is best effort: a dispatcher never reports failure
// back to the action that triggered it.
package fanout

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"github.com/danevairena/SocialMediaBackend/pkg/metrics"
	"go.uber.org/zap"
)

type Request struct {
	ID         string                  `json:"id"`
	ReceiverID uint                    `json:"receiver_id"`
	SenderID   *uint                   `json:"sender_id,omitempty"`
	Type       entity.NotificationType `json:"type"`
	PostID     *uint                   `json:"post_id,omitempty"`
}

// SelfAction is true when the sender would notify themselves.
func (r Request) SelfAction() bool {
	return r.SenderID != nil && *r.SenderID == r.ReceiverID
}

// Sink persists a single notification.
type Sink interface {
	Notify(ctx context.Context, req Request) error
}

// Dispatcher schedules delivery of a request to a Sink.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request)
}

func deliver(ctx context.Context, sink Sink, log *zap.Logger, req Request, stage string) {
	if err := sink.Notify(ctx, req); err != nil {
		metrics.FanoutFailed.WithLabelValues(string(req.Type), stage).Inc()
		log.Warn("notification fan-out failed",
			zap.String("request_id", req.ID),
			zap.Uint("receiver_id", req.ReceiverID),
			zap.String("type", string(req.Type)),
			zap.String("stage", stage),
			zap.Error(err),
		)
	}
}

// Follow builds the request emitted when followerID starts following followingID.
func Follow(followerID, followingID uint) Request {
	return Request{ReceiverID: followingID, SenderID: &followerID, Type: entity.NotificationFollow}
}

func Like(ownerID, likerID, postID uint) Request {
	return Request{ReceiverID: ownerID, SenderID: &likerID, Type: entity.NotificationLike, PostID: &postID}
}

func Comment(ownerID, authorID, postID uint) Request {
	return Request{ReceiverID: ownerID, SenderID: &authorID, Type: entity.NotificationComment, PostID: &postID}
}
