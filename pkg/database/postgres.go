package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/foysalit/codementorx-idea-pool/pkg/config"
)

// NewPostgresConnection opens the GORM connection used by all repositories.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey.
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
}
