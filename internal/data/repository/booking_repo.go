package repository

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/apperror"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	// CreateWithQuota decrements the customer's quota and inserts the booking
	// in one transaction, so a failure cannot lose a quota unit without
	// producing a booking.
	CreateWithQuota(ctx context.Context, booking *entity.Booking, customerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, venue_id, court_id, customer_id, booking_date, start_time, duration_hours,
	customer_name, phone, price, paid_amount, status, used_quota,
	check_in_time, is_no_show, in_cart_since, created_at, updated_at`

const insertBookingQuery = `
	INSERT INTO bookings (id, venue_id, court_id, customer_id, booking_date, start_time, duration_hours,
		customer_name, phone, price, paid_amount, status, used_quota,
		check_in_time, is_no_show, in_cart_since, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`

func bookingInsertArgs(b *entity.Booking) []any {
	return []any{
		b.ID,
		b.VenueID,
		b.CourtID,
		b.CustomerID,
		b.BookingDate,
		b.StartTime,
		b.DurationHours,
		b.CustomerName,
		b.Phone,
		b.Price,
		b.PaidAmount,
		b.Status,
		b.UsedQuota,
		b.CheckInTime,
		b.IsNoShow,
		b.InCartSince,
		b.CreatedAt,
		b.UpdatedAt,
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.VenueID,
		&booking.CourtID,
		&booking.CustomerID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationHours,
		&booking.CustomerName,
		&booking.Phone,
		&booking.Price,
		&booking.PaidAmount,
		&booking.Status,
		&booking.UsedQuota,
		&booking.CheckInTime,
		&booking.IsNoShow,
		&booking.InCartSince,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingQuery, bookingInsertArgs(booking)...)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("venue_id", booking.VenueID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) CreateWithQuota(ctx context.Context, booking *entity.Booking, customerID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin quota booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Guarded decrement: only succeeds while the customer still has credit.
	tag, err := tx.Exec(ctx,
		`UPDATE customers SET quota = quota - 1, updated_at = NOW() WHERE id = $1 AND quota > 0`,
		customerID,
	)
	if err != nil {
		r.log.Error("Failed to decrement customer quota",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("decrement quota for customer %s: %w", customerID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.Conflict("customer %s has no remaining quota", customerID.String())
	}

	if _, err := tx.Exec(ctx, insertBookingQuery, bookingInsertArgs(booking)...); err != nil {
		r.log.Error("Failed to create quota booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("create quota booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit quota booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE venue_id = $1 AND booking_date = $2
		ORDER BY start_time, created_at
	`

	rows, err := r.db.Query(ctx, query, venueID, date)
	if err != nil {
		r.log.Error("Failed to find bookings by venue and date",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find bookings for venue %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET court_id = $2, booking_date = $3, start_time = $4, duration_hours = $5,
		    customer_name = $6, phone = $7, price = $8, paid_amount = $9, status = $10,
		    check_in_time = $11, is_no_show = $12, in_cart_since = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CourtID,
		booking.BookingDate,
		booking.StartTime,
		booking.DurationHours,
		booking.CustomerName,
		booking.Phone,
		booking.Price,
		booking.PaidAmount,
		booking.Status,
		booking.CheckInTime,
		booking.IsNoShow,
		booking.InCartSince,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
