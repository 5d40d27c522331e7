package comment

import (
	"context"
	"testing"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	commentDto "github.com/danevairena/SocialMediaBackend/internal/modules/comment/dto"
	commentRepo "github.com/danevairena/SocialMediaBackend/internal/modules/comment/repository"
	"github.com/danevairena/SocialMediaBackend/internal/modules/notification/fanout"
	notifRepo "github.com/danevairena/SocialMediaBackend/internal/modules/notification/repository"
	notifService "github.com/danevairena/SocialMediaBackend/internal/modules/notification/service"
	postRepo "github.com/danevairena/SocialMediaBackend/internal/modules/post/repository"
	userRepo "github.com/danevairena/SocialMediaBackend/internal/modules/user/repository"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/internal/testutil"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/danevairena/SocialMediaBackend/pkg/avatar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (CommentService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	profiles := user.NewProfileResolver(userRepo.NewUserRepository(db), avatar.NewDecorator("", "/default.png"))
	notifications := notifService.NewNotificationService(notifRepo.NewNotificationRepository(db), profiles)
	svc := NewCommentService(
		commentRepo.NewCommentRepository(db),
		postRepo.NewPostRepository(db),
		profiles,
		fanout.NewInlineDispatcher(notifications, zap.NewNop()),
		zap.NewNop(),
	)
	return svc, db
}

func commentNotifications(t *testing.T, db *gorm.DB) []entity.Notification {
	t.Helper()
	var out []entity.Notification
	require.NoError(t, db.Where("type = ?", entity.NotificationComment).Find(&out).Error)
	return out
}

func TestCreateCommentNotifiesOwner(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	author := testutil.CreateUser(t, db, "author", "author.png")
	post := testutil.CreatePost(t, db, owner.ID)

	resp, err := svc.Create(ctx, commentDto.CreateCommentRequest{PostID: post.ID, UserID: author.ID, Text: "  nice <b>shot</b> "})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "nice <b>shot</b>", resp.Text)
	assert.Equal(t, "author", resp.Username)
	assert.Equal(t, "author.png", resp.Avatar)
	assert.False(t, resp.CreatedAt.IsZero())

	notifications := commentNotifications(t, db)
	require.Len(t, notifications, 1)
	assert.Equal(t, owner.ID, notifications[0].ReceiverID)
	require.NotNil(t, notifications[0].SenderID)
	assert.Equal(t, author.ID, *notifications[0].SenderID)
}

func TestCommentOnOwnPostDoesNotNotify(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	post := testutil.CreatePost(t, db, owner.ID)

	_, err := svc.Create(ctx, commentDto.CreateCommentRequest{PostID: post.ID, UserID: owner.ID, Text: "me again"})
	require.NoError(t, err)
	assert.Empty(t, commentNotifications(t, db))
}

func TestCreateCommentValidation(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, db, "author", "")

	_, err := svc.Create(ctx, commentDto.CreateCommentRequest{PostID: 1, UserID: author.ID, Text: " \n\t "})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = svc.Create(ctx, commentDto.CreateCommentRequest{UserID: author.ID, Text: "hi"})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = svc.Create(ctx, commentDto.CreateCommentRequest{PostID: 1, UserID: 999, Text: "hi"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCommentTextStoredVerbatim(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	author := testutil.CreateUser(t, db, "author", "")
	post := testutil.CreatePost(t, db, owner.ID)

	for _, text := range []string{"if x<y>z then", "use <br> tags", "<hello>", "fish & chips"} {
		_, err := svc.Create(ctx, commentDto.CreateCommentRequest{PostID: post.ID, UserID: author.ID, Text: text})
		require.NoError(t, err, text)
	}

	list, err := svc.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "if x<y>z then", list[0].Text)
	assert.Equal(t, "use <br> tags", list[1].Text)
	assert.Equal(t, "<hello>", list[2].Text)
	assert.Equal(t, "fish & chips", list[3].Text)
}

func TestListAndDeleteComments(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	author := testutil.CreateUser(t, db, "author", "")
	post := testutil.CreatePost(t, db, owner.ID)

	first, err := svc.Create(ctx, commentDto.CreateCommentRequest{PostID: post.ID, UserID: author.ID, Text: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, commentDto.CreateCommentRequest{PostID: post.ID, UserID: owner.ID, Text: "second"})
	require.NoError(t, err)

	list, err := svc.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
	assert.Equal(t, "owner", list[1].Username)

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), apperror.ErrNotFound)

	list, err = svc.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// deleting a comment keeps the notification it produced
	assert.Len(t, commentNotifications(t, db), 1)
}
