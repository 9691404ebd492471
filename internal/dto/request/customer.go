package request

type CreateCustomerRequest struct {
	VenueID  string `json:"venue_id" validate:"required,uuid"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
	Quota    int    `json:"quota" validate:"min=0"`
	IsMember bool   `json:"is_member"`
}

type UpdateQuotaRequest struct {
	Quota int `json:"quota" validate:"min=0"`
}
