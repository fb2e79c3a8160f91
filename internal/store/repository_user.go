package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// PostgresUserRepository is the PostgreSQL implementation of
// [UserRepository].
type PostgresUserRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPostgresUserRepository(db *DB, log *logger.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{db: db, logger: log}
}

// Create implements [UserRepository].
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.QueryRowContext(ctx, createUserQuery,
		user.Login, user.PasswordHash, user.CreatedAt,
	).Scan(&user.UserID)
	if isUniqueViolation(err, "") {
		return nil, ErrLoginAlreadyTaken
	}
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresUserRepository.Create").Msg("error creating user")
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetByLogin implements [UserRepository].
func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, getUserByLoginQuery, login).Scan(
		&user.UserID, &user.Login, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return &user, nil
}
