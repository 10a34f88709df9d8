package purchaserepo

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

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) error {
	query := `
        INSERT INTO purchases (id, raffle_id, buyer_name, buyer_phone, buyer_email, total_amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		purchase.ID, purchase.RaffleID,
		purchase.Buyer.Name, purchase.Buyer.Phone, purchase.Buyer.Email,
		purchase.TotalAmount, purchase.Status, purchase.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, buyer_name, buyer_phone, buyer_email, total_amount, status, created_at
        FROM purchases
        WHERE id = $1
    `
	var p domain.Purchase
	err := r.db.QueryRow(ctx, query, purchaseID).Scan(
		&p.ID, &p.RaffleID,
		&p.Buyer.Name, &p.Buyer.Phone, &p.Buyer.Email,
		&p.TotalAmount, &p.Status, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindAll(ctx context.Context, raffleID *string) ([]domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, buyer_name, buyer_phone, buyer_email, total_amount, status, created_at
        FROM purchases
        ORDER BY created_at DESC
    `
	args := []any{}
	if raffleID != nil {
		query = `
        SELECT id, raffle_id, buyer_name, buyer_phone, buyer_email, total_amount, status, created_at
        FROM purchases
        WHERE raffle_id = $1
        ORDER BY created_at DESC
    `
		args = append(args, *raffleID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(
			&p.ID, &p.RaffleID,
			&p.Buyer.Name, &p.Buyer.Phone, &p.Buyer.Email,
			&p.TotalAmount, &p.Status, &p.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *Repository) Aggregate(ctx context.Context) (count int, revenue float64, err error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
        FROM purchases
    `
	err = r.db.QueryRow(ctx, query).Scan(&count, &revenue)
	if err != nil {
		zap.L().Error("can't aggregate purchases", zap.Error(err))
		return 0, 0, err
	}
	return count, revenue, nil
}
