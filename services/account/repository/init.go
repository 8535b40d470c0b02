package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/safinity/safinity/internal/pkg/database"
	"github.com/safinity/safinity/internal/pkg/models"
)

// AccountRepo implements the account repository against PostgreSQL and Redis
type AccountRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *AccountRepo {
	return &AccountRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
