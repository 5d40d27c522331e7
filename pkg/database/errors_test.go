package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsDuplicateKey(errors.New(`ERROR: duplicate key value violates unique constraint "idx_follow_pair"`)))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: likes.post_id, likes.user_id")))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, IsDuplicateKey(nil))
}

func TestOptionsDSN(t *testing.T) {
	opts := Options{Host: "db", User: "app", Password: "secret", Name: "social", Port: "5432"}
	assert.Equal(t, "host=db user=app password=secret dbname=social port=5432 sslmode=disable TimeZone=UTC", opts.DSN())

	opts.URL = "postgres://app@db/social"
	assert.Equal(t, "postgres://app@db/social", opts.DSN())
}
