package request

type CreateBookingRequest struct {
	VenueID       string `json:"venue_id" validate:"required,uuid"`
	CourtID       string `json:"court_id" validate:"required,uuid"`
	CustomerID    string `json:"customer_id" validate:"omitempty,uuid"`
	BookingDate   string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"required,datetime=15:04"`
	DurationHours int    `json:"duration_hours" validate:"required,min=1"`
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=8,max=20"`
	Price         int64  `json:"price" validate:"min=0"`
	PaidAmount    int64  `json:"paid_amount" validate:"min=0"`
	UseQuota      bool   `json:"use_quota"`
}

// UpdateBookingRequest carries a partial edit; nil fields stay untouched.
type UpdateBookingRequest struct {
	CourtID       *string `json:"court_id" validate:"omitempty,uuid"`
	BookingDate   *string `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	DurationHours *int    `json:"duration_hours" validate:"omitempty,min=1"`
	CustomerName  *string `json:"customer_name" validate:"omitempty,min=2,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,min=8,max=20"`
	Price         *int64  `json:"price" validate:"omitempty,min=0"`
	PaidAmount    *int64  `json:"paid_amount" validate:"omitempty,min=0"`
}
