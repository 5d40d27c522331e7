package database

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB      *gorm.DB
	once    sync.Once
	openErr error
)

// Options describe how to reach the relational store.
type Options struct {
	URL      string
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	Debug    bool
}

func (o Options) DSN() string {
	if o.URL != "" {
		return o.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		o.Host, o.User, o.Password, o.Name, o.Port,
	)
}

// Connect opens the shared Postgres connection once per process.
func Connect(opts Options) (*gorm.DB, error) {
	once.Do(func() {
		DB, openErr = gorm.Open(postgres.Open(opts.DSN()), Config(opts.Debug))
	})
	return DB, openErr
}

// Config is the gorm configuration shared by Postgres and the sqlite test store.
// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
func Config(debug bool) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
