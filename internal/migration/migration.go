package migration

import (
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Run applies schema migrations for every domain model
func Run(db *gorm.DB) error {
	log.Info().Msg("Running database migrations")

	err := db.AutoMigrate(
		&domain.User{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Like{},
		&domain.Exercise{},
		&domain.Workout{},
	)
	if err != nil {
		return err
	}

	log.Info().Msg("Database migrations complete")
	return nil
}
