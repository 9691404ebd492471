package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/apperror"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Customer, error)
	UpdateQuota(ctx context.Context, id uuid.UUID, quota int) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, venue_id, name, phone, quota, is_member, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.VenueID,
		customer.Name,
		customer.Phone,
		customer.Quota,
		customer.IsMember,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("create customer %s: %w", customer.ID.String(), err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, venue_id, name, phone, quota, is_member, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.VenueID,
		&customer.Name,
		&customer.Phone,
		&customer.Quota,
		&customer.IsMember,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &customer, nil
}

func (r *customerRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Customer, error) {
	query := `
		SELECT id, venue_id, name, phone, quota, is_member, created_at, updated_at
		FROM customers
		WHERE venue_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find customers by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find customers for venue %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.VenueID,
			&customer.Name,
			&customer.Phone,
			&customer.Quota,
			&customer.IsMember,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}

	return customers, nil
}

func (r *customerRepository) UpdateQuota(ctx context.Context, id uuid.UUID, quota int) error {
	if quota < 0 {
		quota = 0
	}

	query := `UPDATE customers SET quota = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, quota)
	if err != nil {
		r.log.Error("Failed to update customer quota",
			zap.Error(err),
			zap.String("customer_id", id.String()),
			zap.Int("quota", quota),
		)
		return fmt.Errorf("update quota for customer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("customer %s not found", id.String())
	}

	return nil
}
