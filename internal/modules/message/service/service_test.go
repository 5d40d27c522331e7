package message

import (
	"context"
	"testing"
	"time"

	msgDto "github.com/danevairena/SocialMediaBackend/internal/modules/message/dto"
	msgRepo "github.com/danevairena/SocialMediaBackend/internal/modules/message/repository"
	userRepo "github.com/danevairena/SocialMediaBackend/internal/modules/user/repository"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/internal/testutil"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/danevairena/SocialMediaBackend/pkg/avatar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (MessageService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	profiles := user.NewProfileResolver(userRepo.NewUserRepository(db), avatar.NewDecorator("http://cdn.test/", "/default.png"))
	return NewMessageService(msgRepo.NewMessageRepository(db), profiles), db
}

func TestSendThenMarkSeen(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	u1 := testutil.CreateUser(t, db, "one", "one.png")
	u2 := testutil.CreateUser(t, db, "two", "")

	sent, err := svc.Send(ctx, u1.ID, msgDto.SendMessageRequest{ReceiverID: u2.ID, Content: "hi"})
	require.NoError(t, err)
	assert.NotZero(t, sent.ID)
	assert.False(t, sent.Seen)
	assert.False(t, sent.CreatedAt.IsZero())

	unread, err := svc.UnreadCount(ctx, u2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	convs, err := svc.ListConversations(ctx, u2.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, u1.ID, convs[0].UserID)
	assert.Equal(t, "one", convs[0].Username)
	assert.Equal(t, "http://cdn.test/one.png", convs[0].Avatar)
	assert.Equal(t, "hi", convs[0].LastMessage)
	assert.EqualValues(t, 1, convs[0].UnreadCount)

	updated, err := svc.MarkSeen(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)

	updated, err = svc.MarkSeen(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)

	unread, err = svc.UnreadCount(ctx, u2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	convs, err = svc.ListConversations(ctx, u2.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "hi", convs[0].LastMessage)
	assert.EqualValues(t, 0, convs[0].UnreadCount)
}

func TestMarkSeenOnlyAffectsViewerAsReceiver(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	u1 := testutil.CreateUser(t, db, "one", "")
	u2 := testutil.CreateUser(t, db, "two", "")

	_, err := svc.Send(ctx, u1.ID, msgDto.SendMessageRequest{ReceiverID: u2.ID, Content: "hi"})
	require.NoError(t, err)

	// the sender cannot mark their own outgoing message as seen
	updated, err := svc.MarkSeen(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)

	unread, err := svc.UnreadCount(ctx, u2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)
}

func TestAlternatingMessagesLastWins(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	u1 := testutil.CreateUser(t, db, "one", "")
	u2 := testutil.CreateUser(t, db, "two", "")
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	testutil.CreateMessage(t, db, u1.ID, u2.ID, "first", base)
	testutil.CreateMessage(t, db, u2.ID, u1.ID, "second", base.Add(time.Second))
	testutil.CreateMessage(t, db, u1.ID, u2.ID, "third", base.Add(2*time.Second))

	convs, err := svc.ListConversations(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, u2.ID, convs[0].UserID)
	assert.Equal(t, "third", convs[0].LastMessage)
	assert.EqualValues(t, 1, convs[0].UnreadCount)

	history, err := svc.History(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "third", history[2].Content)
}

func TestSameTimestampFallsBackToInsertionOrder(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	u1 := testutil.CreateUser(t, db, "one", "")
	u2 := testutil.CreateUser(t, db, "two", "")
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	testutil.CreateMessage(t, db, u1.ID, u2.ID, "a", at)
	testutil.CreateMessage(t, db, u2.ID, u1.ID, "b", at)
	testutil.CreateMessage(t, db, u1.ID, u2.ID, "c", at)

	convs, err := svc.ListConversations(ctx, u2.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "c", convs[0].LastMessage)

	history, err := svc.History(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{history[0].Content, history[1].Content, history[2].Content})
}

func TestConversationsOrderedByLatestActivity(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	me := testutil.CreateUser(t, db, "me", "")
	old := testutil.CreateUser(t, db, "old", "")
	recent := testutil.CreateUser(t, db, "recent", "")
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	testutil.CreateMessage(t, db, old.ID, me.ID, "long ago", base)
	testutil.CreateMessage(t, db, me.ID, recent.ID, "just now", base.Add(time.Hour))
	testutil.CreateMessage(t, db, old.ID, recent.ID, "not mine", base.Add(2*time.Hour))

	convs, err := svc.ListConversations(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, recent.ID, convs[0].UserID)
	assert.EqualValues(t, 0, convs[0].UnreadCount)
	assert.Equal(t, old.ID, convs[1].UserID)
	assert.EqualValues(t, 1, convs[1].UnreadCount)
}

func TestConversationWithDeletedPeer(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	me := testutil.CreateUser(t, db, "me", "")

	testutil.CreateMessage(t, db, 404, me.ID, "from the void", time.Now())

	convs, err := svc.ListConversations(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, uint(404), convs[0].UserID)
	assert.Equal(t, "", convs[0].Username)
	assert.Equal(t, "/default.png", convs[0].Avatar)
}

func TestHistoryCarriesSenderProfile(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	u1 := testutil.CreateUser(t, db, "one", "one.png")
	u2 := testutil.CreateUser(t, db, "two", "")

	_, err := svc.Send(ctx, u1.ID, msgDto.SendMessageRequest{ReceiverID: u2.ID, Content: "ping"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, u2.ID, msgDto.SendMessageRequest{ReceiverID: u1.ID, Content: "pong"})
	require.NoError(t, err)

	history, err := svc.History(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "one", history[0].SenderName)
	assert.Equal(t, "http://cdn.test/one.png", history[0].SenderPic)
	assert.Equal(t, "two", history[1].SenderName)
	assert.Equal(t, "/default.png", history[1].SenderPic)
}

func TestHistoryWithDeletedPeer(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	me := testutil.CreateUser(t, db, "me", "")

	testutil.CreateMessage(t, db, 404, me.ID, "from the void", time.Now())

	history, err := svc.History(ctx, me.ID, 404)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "", history[0].SenderName)
	assert.Equal(t, "/default.png", history[0].SenderPic)
}

func TestContentStoredVerbatim(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	u1 := testutil.CreateUser(t, db, "one", "")
	u2 := testutil.CreateUser(t, db, "two", "")

	contents := []string{"if x<y>z then", "use <br> tags", "<hello>", "fish & chips"}
	for _, content := range contents {
		sent, err := svc.Send(ctx, u1.ID, msgDto.SendMessageRequest{ReceiverID: u2.ID, Content: "  " + content + " "})
		require.NoError(t, err, content)
		assert.Equal(t, content, sent.Content)
	}

	history, err := svc.History(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	require.Len(t, history, len(contents))
	for i, content := range contents {
		assert.Equal(t, content, history[i].Content)
	}
}

func TestSendValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, 1, msgDto.SendMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = svc.Send(ctx, 1, msgDto.SendMessageRequest{ReceiverID: 2, Content: "   "})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = svc.History(ctx, 1, 0)
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
}
