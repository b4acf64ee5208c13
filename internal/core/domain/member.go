package domain

import "time"

// Member is the record managed by this service. DateOfBirth is a
// calendar date (YYYY-MM-DD) with no time component.
type Member struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	FirstName   string    `json:"firstName" bson:"first_name"`
	LastName    string    `json:"lastName" bson:"last_name"`
	Email       string    `json:"email" bson:"email"`
	DateOfBirth string    `json:"dateOfBirth" bson:"date_of_birth"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
