package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = "id, username, password_hash, name, cpf, address, phone, email, created_at"

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE username = $1
    `
	err := repo.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Name,
		&user.CPF, &user.Address, &user.Phone, &user.Email, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	err := repo.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Name,
		&user.CPF, &user.Address, &user.Phone, &user.Email, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, username, password_hash, name, cpf, address, phone, email)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	err := repo.db.QueryRow(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Name,
		user.CPF, user.Address, user.Phone, user.Email,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
