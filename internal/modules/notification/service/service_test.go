package service

import (
	"context"
	"testing"
	"time"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	notifDto "github.com/danevairena/SocialMediaBackend/internal/modules/notification/dto"
	"github.com/danevairena/SocialMediaBackend/internal/modules/notification/fanout"
	notifRepo "github.com/danevairena/SocialMediaBackend/internal/modules/notification/repository"
	userRepo "github.com/danevairena/SocialMediaBackend/internal/modules/user/repository"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/internal/testutil"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/danevairena/SocialMediaBackend/pkg/avatar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (NotificationService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	profiles := user.NewProfileResolver(userRepo.NewUserRepository(db), avatar.NewDecorator("http://cdn.test/", "/default.png"))
	return NewNotificationService(notifRepo.NewNotificationRepository(db), profiles), db
}

func TestNotifyThenList(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "owner", "")
	liker := testutil.CreateUser(t, db, "liker", "liker.png")
	post := testutil.CreatePost(t, db, owner.ID)

	require.NoError(t, svc.Notify(ctx, fanout.Like(owner.ID, liker.ID, post.ID)))

	list, err := svc.ListForUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	n := list[0]
	assert.Equal(t, "like", n.Type)
	assert.Equal(t, "liked your post", n.Message)
	assert.False(t, n.IsRead)
	require.NotNil(t, n.PostID)
	assert.Equal(t, post.ID, *n.PostID)
	require.NotNil(t, n.FromUser)
	assert.Equal(t, liker.ID, n.FromUser.ID)
	assert.Equal(t, "liker", n.FromUser.Username)
	assert.Equal(t, "http://cdn.test/liker.png", n.FromUser.Avatar)
}

func TestListOrderAndUnresolvedSender(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	receiver := testutil.CreateUser(t, db, "receiver", "")
	ghost := uint(4242)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	older := entity.Notification{ReceiverID: receiver.ID, SenderID: &ghost, Type: entity.NotificationFollow, CreatedAt: base}
	newer := entity.Notification{ReceiverID: receiver.ID, Type: entity.NotificationType("mention"), CreatedAt: base.Add(time.Minute)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	list, err := svc.ListForUser(ctx, receiver.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "", list[0].Message)
	assert.Nil(t, list[0].FromUser)

	assert.Equal(t, older.ID, list[1].ID)
	assert.Equal(t, "started following you", list[1].Message)
	assert.Nil(t, list[1].FromUser)
}

func TestMarkAllAsReadIsIdempotent(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	receiver := testutil.CreateUser(t, db, "receiver", "")
	sender := testutil.CreateUser(t, db, "sender", "")
	require.NoError(t, svc.Notify(ctx, fanout.Follow(sender.ID, receiver.ID)))
	require.NoError(t, svc.Notify(ctx, fanout.Follow(sender.ID, receiver.ID)))

	unread, err := svc.UnreadCount(ctx, receiver.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	updated, err := svc.MarkAllAsRead(ctx, receiver.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	updated, err = svc.MarkAllAsRead(ctx, receiver.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)

	list, err := svc.ListForUser(ctx, receiver.ID)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.IsRead)
	}
}

func TestMarkAsReadScopedToReceiver(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	receiver := testutil.CreateUser(t, db, "receiver", "")
	other := testutil.CreateUser(t, db, "other", "")

	n, err := svc.Create(ctx, notifDto.CreateNotificationRequest{ReceiverID: receiver.ID, SenderID: &other.ID, Type: "comment"})
	require.NoError(t, err)

	err = svc.MarkAsRead(ctx, other.ID, n.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, svc.MarkAsRead(ctx, receiver.ID, n.ID))
	require.NoError(t, svc.MarkAsRead(ctx, receiver.ID, n.ID))

	unread, err := svc.UnreadCount(ctx, receiver.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)
}

func TestCreateValidation(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "u", "")

	tests := []struct {
		name string
		req  notifDto.CreateNotificationRequest
	}{
		{"missing receiver", notifDto.CreateNotificationRequest{Type: "like"}},
		{"missing type", notifDto.CreateNotificationRequest{ReceiverID: u.ID}},
		{"blank type", notifDto.CreateNotificationRequest{ReceiverID: u.ID, Type: "  "}},
		{"self notification", notifDto.CreateNotificationRequest{ReceiverID: u.ID, SenderID: &u.ID, Type: "like"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		})
	}

	n, err := svc.Create(ctx, notifDto.CreateNotificationRequest{ReceiverID: u.ID, Type: "mention"})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationType("mention"), n.Type)
	assert.False(t, n.IsRead)
}
