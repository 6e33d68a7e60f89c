package promo

// PreorderRequest secures a pair from an upcoming release.
type PreorderRequest struct {
	EditionID int    `json:"editionId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// ReservationRequest books an in-store fitting appointment.
// Phone, size, and notes are optional.
type ReservationRequest struct {
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Store string `json:"store" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty"`
	Size  string `json:"size" validate:"omitempty"`
	Notes string `json:"notes" validate:"omitempty"`
}

// Confirmation is the user-facing result of a successful promo flow.
type Confirmation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Reward is a claimable launch-campaign bonus.
type Reward struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
}
