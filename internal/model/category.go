package model

import "time"

// CategoryID uniquely identifies an auction category
type CategoryID string

// MaxCategoryPlayers is the hard cap on members per category
const MaxCategoryPlayers = 8

// Category is a named bucket of up to MaxCategoryPlayers player ids.
// Players is kept in add order and never contains duplicates. Ids may
// dangle (reference a deleted player); readers drop those at resolve time.
type Category struct {
	ID        CategoryID `json:"id"`
	Name      string     `json:"name"`
	Players   []PlayerID `json:"players"`
	CreatedAt time.Time  `json:"createdAt"`
}

// HasPlayer reports whether the player id is currently a member
func (c *Category) HasPlayer(id PlayerID) bool {
	for _, p := range c.Players {
		if p == id {
			return true
		}
	}
	return false
}

// IsFull reports whether the category is at capacity
func (c *Category) IsFull() bool {
	return len(c.Players) >= MaxCategoryPlayers
}
