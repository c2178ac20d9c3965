package redis

import (
	"fmt"

	"github.com/SiddheshD91/PPL2026/internal/model"
)

// Key prefix for all auction data
const keyPrefix = "ppl"

// playerKey returns the Redis key for a Player document
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// categoryKey returns the Redis key for a Category document
func categoryKey(id model.CategoryID) string {
	return fmt.Sprintf("%s:category:%s", keyPrefix, id)
}

// categoriesIndexKey returns the Redis key for the SET of all category keys
func categoriesIndexKey() string {
	return fmt.Sprintf("%s:idx:categories", keyPrefix)
}

// adminKey returns the Redis key for an Admin account
func adminKey(email string) string {
	return fmt.Sprintf("%s:admin:%s", keyPrefix, email)
}
