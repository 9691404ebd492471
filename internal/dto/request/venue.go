package request

type CreateVenueRequest struct {
	Name                 string `json:"name" validate:"required,min=2,max=100"`
	BookingTolerance     int    `json:"booking_tolerance" validate:"min=0"`
	MinDpPercentage      int    `json:"min_dp_percentage" validate:"min=0,max=100"`
	DepositPolicyEnabled bool   `json:"deposit_policy_enabled"`
	MinDepositAmount     int64  `json:"min_deposit_amount" validate:"min=0"`
	OpenHour             int    `json:"open_hour" validate:"min=0,max=23"`
	CloseHour            int    `json:"close_hour" validate:"min=0,max=24"`
}

type CreateCourtRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	HourlyPrice int64  `json:"hourly_price" validate:"required,min=1"`
}
