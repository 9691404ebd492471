package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindAll(ctx context.Context) ([]*entity.Venue, error)
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (id, name, booking_tolerance, min_dp_percentage,
			deposit_policy_enabled, min_deposit_amount, open_hour, close_hour, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.BookingTolerance,
		venue.MinDpPercentage,
		venue.DepositPolicyEnabled,
		venue.MinDepositAmount,
		venue.OpenHour,
		venue.CloseHour,
		venue.CreatedAt,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("venue_id", venue.ID.String()),
		)
		return fmt.Errorf("create venue %s: %w", venue.ID.String(), err)
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `
		SELECT id, name, booking_tolerance, min_dp_percentage,
			deposit_policy_enabled, min_deposit_amount, open_hour, close_hour, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	var venue entity.Venue
	err := r.db.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.BookingTolerance,
		&venue.MinDpPercentage,
		&venue.DepositPolicyEnabled,
		&venue.MinDepositAmount,
		&venue.OpenHour,
		&venue.CloseHour,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	query := `
		SELECT id, name, booking_tolerance, min_dp_percentage,
			deposit_policy_enabled, min_deposit_amount, open_hour, close_hour, created_at, updated_at
		FROM venues
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find venues", zap.Error(err))
		return nil, fmt.Errorf("find venues: %w", err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		var venue entity.Venue
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.BookingTolerance,
			&venue.MinDpPercentage,
			&venue.DepositPolicyEnabled,
			&venue.MinDepositAmount,
			&venue.OpenHour,
			&venue.CloseHour,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	return venues, nil
}
