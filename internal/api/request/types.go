package request

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPlayerRequest is the request body for the public registration
// form. Photo carries the raw image bytes base64-encoded.
type RegisterPlayerRequest struct {
	Name             string `json:"name"`
	TshirtSize       int    `json:"tshirt_size"`
	DOB              string `json:"dob"`
	Photo            string `json:"photo"`
	PhotoContentType string `json:"photo_content_type"`
}

// UpdatePlayerRequest is the request body for editing a player. Absent
// fields are left unchanged.
type UpdatePlayerRequest struct {
	Name             *string `json:"name,omitempty"`
	TshirtSize       *int    `json:"tshirt_size,omitempty"`
	DOB              *string `json:"dob,omitempty"`
	Photo            string  `json:"photo,omitempty"`
	PhotoContentType string  `json:"photo_content_type,omitempty"`
}

// CreateCategoryRequest is the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// AddPlayerRequest is the request body for adding a player to a category
type AddPlayerRequest struct {
	PlayerID string `json:"player_id"`
}
