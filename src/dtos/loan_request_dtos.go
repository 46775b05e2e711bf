package dtos

// IssueLoanRequestDTO is the JSON payload for issuing a loan. The user is
// identified by email and the book by ISBN, like the admin form submits them.
type IssueLoanRequestDTO struct {
	Email   string `json:"email" binding:"required,email"`
	ISBN    string `json:"isbn" binding:"required"`
	DueDate string `json:"due_date" binding:"required"`
}

// UpdateLoanRequestDTO is the JSON payload for changing an active loan
type UpdateLoanRequestDTO struct {
	DueDate string `json:"due_date" binding:"required"`
	Email   string `json:"email"`
}

// ReservationRequestDTO is the JSON payload for queueing a reservation
type ReservationRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
	ISBN  string `json:"isbn" binding:"required"`
}
