package users

import "time"

// UserProfileResponse represents the data returned for a user profile.
// @Description User profile information
type UserProfileResponse struct {
	// example: 1
	ID int64 `json:"id"`
	// example: "johndoe@example.com"
	Email string `json:"email"`
	// example: "2023-01-15T10:30:00Z"
	CreatedAt time.Time `json:"created_at"`
}
