package seller

import "time"

// Profile is the authenticated seller's account record.
type Profile struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	StoreName    string    `json:"storeName"`
	GSTNumber    string    `json:"gstNumber"`
	PANNumber    string    `json:"panNumber"`
	BusinessType string    `json:"businessType"`
	ProfileImage string    `json:"profileImage"`
	Role         string    `json:"role,omitempty"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileUpdate is the full edited record sent by UpdateProfile. The write
// replaces the record server-side; the store does not fold the response
// back into its Profile cache, so callers refetch when they need the
// authoritative post-write state.
type ProfileUpdate struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	StoreName    string `json:"storeName"`
	GSTNumber    string `json:"gstNumber"`
	PANNumber    string `json:"panNumber"`
	BusinessType string `json:"businessType"`
}
