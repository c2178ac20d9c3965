package response

import (
	"time"

	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PhotoURL   string    `json:"photo_url"`
	TshirtSize int       `json:"tshirt_size"`
	DOB        string    `json:"dob"`
	Age        int       `json:"age"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:         string(p.ID),
		Name:       p.Name,
		PhotoURL:   p.PhotoURL,
		TshirtSize: p.TshirtSize,
		DOB:        p.DOB,
		Age:        p.Age,
		CreatedAt:  p.CreatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Category represents a category in API responses
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Players   []string  `json:"players"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryFromModel converts a model.Category to a response Category
func CategoryFromModel(c *model.Category) Category {
	players := make([]string, len(c.Players))
	for i, id := range c.Players {
		players[i] = string(id)
	}
	return Category{
		ID:        string(c.ID),
		Name:      c.Name,
		Players:   players,
		CreatedAt: c.CreatedAt,
	}
}

// CategoriesFromModel converts a slice of categories
func CategoriesFromModel(categories []*model.Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = CategoryFromModel(c)
	}
	return out
}

// CategoryMembers is a category together with its resolved player records.
// Dangling member ids are absent from Members but still listed on the
// category itself.
type CategoryMembers struct {
	Category Category `json:"category"`
	Members  []Player `json:"members"`
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Email        string `json:"email"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Email:        s.Email,
		SessionToken: s.Token,
	}
}
