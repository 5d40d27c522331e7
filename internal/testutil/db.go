// Package testutil holds store fixtures shared by the package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/danevairena/SocialMediaBackend/internal/bootstrap"
	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"github.com/danevairena/SocialMediaBackend/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory sqlite store private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), database.Config(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, bootstrap.Migrate(db))
	return db
}

// CreateUser inserts a user; pic may be empty for "no avatar on file".
func CreateUser(t *testing.T, db *gorm.DB, username, pic string) entity.User {
	t.Helper()

	u := entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if pic != "" {
		u.ProfilePicture = &pic
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func CreatePost(t *testing.T, db *gorm.DB, ownerID uint) entity.Post {
	t.Helper()

	p := entity.Post{UserID: ownerID, Content: "post"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// CreateMessage inserts a message with an explicit timestamp so ordering can be controlled.
func CreateMessage(t *testing.T, db *gorm.DB, from, to uint, content string, at time.Time) entity.Message {
	t.Helper()

	m := entity.Message{SenderID: from, ReceiverID: to, Content: content, CreatedAt: at.UTC()}
	require.NoError(t, db.Create(&m).Error)
	return m
}
