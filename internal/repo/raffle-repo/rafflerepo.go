package rafflerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const raffleColumns = "id, title, description, prize, price, total_numbers, image_url, draw_date, status, winner_number, created_at"

func scanRaffle(row pgx.Row) (*domain.Raffle, error) {
	var raffle domain.Raffle
	err := row.Scan(
		&raffle.ID, &raffle.Title, &raffle.Description, &raffle.Prize,
		&raffle.Price, &raffle.TotalNumbers, &raffle.ImageURL, &raffle.DrawDate,
		&raffle.Status, &raffle.WinnerNumber, &raffle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}

func (r *Repository) Create(ctx context.Context, raffle *domain.Raffle) error {
	query := `
        INSERT INTO raffles (id, title, description, prize, price, total_numbers, image_url, draw_date, status, winner_number, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query,
		raffle.ID, raffle.Title, raffle.Description, raffle.Prize,
		raffle.Price, raffle.TotalNumbers, raffle.ImageURL, raffle.DrawDate,
		raffle.Status, raffle.WinnerNumber, raffle.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save raffle", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, raffleID string) (*domain.Raffle, error) {
	query := `
        SELECT ` + raffleColumns + `
        FROM raffles
        WHERE id = $1
    `
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query, raffleID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

// FindByIDForUpdate locks the raffle row until the surrounding
// transaction commits; purchase, draw and reset all take this lock so
// their check-then-write sequences serialize per raffle.
func (r *Repository) FindByIDForUpdate(ctx context.Context, raffleID string) (*domain.Raffle, error) {
	query := `
        SELECT ` + raffleColumns + `
        FROM raffles
        WHERE id = $1
        FOR UPDATE
    `
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query, raffleID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

func (r *Repository) FindAll(ctx context.Context, status *domain.RaffleStatus) ([]domain.Raffle, error) {
	query := `
        SELECT ` + raffleColumns + `
        FROM raffles
        ORDER BY created_at DESC
    `
	args := []any{}
	if status != nil {
		query = `
        SELECT ` + raffleColumns + `
        FROM raffles
        WHERE status = $1
        ORDER BY created_at DESC
    `
		args = append(args, *status)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get raffles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			zap.L().Error("can't scan raffle row", zap.Error(err))
			return nil, err
		}
		raffles = append(raffles, *raffle)
	}
	return raffles, nil
}

func (r *Repository) Update(ctx context.Context, raffle *domain.Raffle) error {
	query := `
        UPDATE raffles
        SET title = $1, description = $2, prize = $3, price = $4, total_numbers = $5, image_url = $6, draw_date = $7
        WHERE id = $8
    `
	_, err := r.db.Exec(ctx, query,
		raffle.Title, raffle.Description, raffle.Prize, raffle.Price,
		raffle.TotalNumbers, raffle.ImageURL, raffle.DrawDate, raffle.ID,
	)
	if err != nil {
		zap.L().Error("can't update raffle", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, raffleID string) (bool, error) {
	query := `
        DELETE FROM raffles
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("can't delete raffle", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetWinner(ctx context.Context, raffleID string, winnerNumber int) error {
	query := `
        UPDATE raffles
        SET status = $1, winner_number = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, domain.RaffleCompleted, winnerNumber, raffleID)
	if err != nil {
		zap.L().Error("can't set raffle winner", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Reactivate(ctx context.Context, raffleID string) error {
	query := `
        UPDATE raffles
        SET status = $1, winner_number = NULL
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.RaffleActive, raffleID)
	if err != nil {
		zap.L().Error("can't reactivate raffle", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindDueForDraw(ctx context.Context, limit uint32) ([]domain.Raffle, error) {
	query := `
        SELECT ` + raffleColumns + `
        FROM raffles
        WHERE status = 'active' AND draw_date <= now()
        ORDER BY draw_date ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get raffles due for draw", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			zap.L().Error("can't scan raffle row for draw", zap.Error(err))
			return nil, err
		}
		raffles = append(raffles, *raffle)
	}
	return raffles, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (total, active, completed int, err error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'active'),
               COUNT(*) FILTER (WHERE status = 'completed')
        FROM raffles
    `
	err = r.db.QueryRow(ctx, query).Scan(&total, &active, &completed)
	if err != nil {
		zap.L().Error("can't count raffles", zap.Error(err))
		return 0, 0, 0, err
	}
	return total, active, completed, nil
}
