package bootstrap

import (
	"fmt"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Post{},
		&entity.FollowEdge{},
		&entity.LikeEdge{},
		&entity.Comment{},
		&entity.Notification{},
		&entity.Message{},
	)
}

const demoPassword = "password123"

var demoUsers = []entity.User{
	{Username: "alice", Email: "alice@example.com", FirstName: "Alice", LastName: "Ivanova"},
	{Username: "bob", Email: "bob@example.com", FirstName: "Bob", LastName: "Petrov"},
	{Username: "carol", Email: "carol@example.com", FirstName: "Carol", LastName: "Georgieva"},
}

// SeedDemoData creates the demo users with one post each. Existing users are left alone.
func SeedDemoData(db *gorm.DB, log *zap.Logger) ([]entity.User, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seeded := make([]entity.User, 0, len(demoUsers))
	for _, demo := range demoUsers {
		var existing entity.User
		res := db.Where("email = ?", demo.Email).Limit(1).Find(&existing)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			log.Info("demo user already exists, skipping seed", zap.String("username", existing.Username))
			seeded = append(seeded, existing)
			continue
		}

		user := demo
		user.PasswordHash = string(hashedPasswordBytes)
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}

		post := entity.Post{
			UserID:  user.ID,
			Content: fmt.Sprintf("Hello from %s!", user.FirstName),
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}

		log.Info("demo user seeded", zap.Uint("id", user.ID), zap.String("username", user.Username))
		seeded = append(seeded, user)
	}

	return seeded, nil
}
