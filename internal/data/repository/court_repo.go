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

type CourtRepository interface {
	Create(ctx context.Context, court *entity.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Court, error)
}

type courtRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourtRepository(db database.PgxIface, log *zap.Logger) CourtRepository {
	return &courtRepository{
		db:  db,
		log: log.With(zap.String("repository", "court")),
	}
}

func (r *courtRepository) Create(ctx context.Context, court *entity.Court) error {
	query := `
		INSERT INTO courts (id, venue_id, name, hourly_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		court.ID,
		court.VenueID,
		court.Name,
		court.HourlyPrice,
		court.CreatedAt,
		court.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create court",
			zap.Error(err),
			zap.String("court_id", court.ID.String()),
			zap.String("venue_id", court.VenueID.String()),
		)
		return fmt.Errorf("create court %s: %w", court.ID.String(), err)
	}

	return nil
}

func (r *courtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
	query := `
		SELECT id, venue_id, name, hourly_price, created_at, updated_at
		FROM courts
		WHERE id = $1
	`

	var court entity.Court
	err := r.db.QueryRow(ctx, query, id).Scan(
		&court.ID,
		&court.VenueID,
		&court.Name,
		&court.HourlyPrice,
		&court.CreatedAt,
		&court.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find court by ID",
			zap.Error(err),
			zap.String("court_id", id.String()),
		)
		return nil, fmt.Errorf("find court by ID %s: %w", id.String(), err)
	}

	return &court, nil
}

func (r *courtRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Court, error) {
	query := `
		SELECT id, venue_id, name, hourly_price, created_at, updated_at
		FROM courts
		WHERE venue_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find courts by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find courts for venue %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	var courts []*entity.Court
	for rows.Next() {
		var court entity.Court
		err := rows.Scan(
			&court.ID,
			&court.VenueID,
			&court.Name,
			&court.HourlyPrice,
			&court.CreatedAt,
			&court.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan court row", zap.Error(err))
			return nil, fmt.Errorf("scan court row: %w", err)
		}
		courts = append(courts, &court)
	}

	return courts, nil
}
