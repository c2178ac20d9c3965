package storage

import (
	"context"

	"github.com/SiddheshD91/PPL2026/internal/model"
)

// Storage defines the interface for data persistence.
//
// Ids and creation timestamps are store-assigned: Create* fills in the ID
// and CreatedAt fields of the passed document before persisting it, and
// CreatedAt is never regenerated on update.
type Storage interface {
	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) (model.PlayerID, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	UpdatePlayer(ctx context.Context, id model.PlayerID, update model.PlayerUpdate) error
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Category operations
	CreateCategory(ctx context.Context, category *model.Category) (model.CategoryID, error)
	GetCategory(ctx context.Context, id model.CategoryID) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	// UpdateCategory applies mutate to the current document and persists the
	// result atomically with respect to other UpdateCategory calls on the
	// same id. An error returned by mutate aborts the update and is
	// propagated unchanged.
	UpdateCategory(ctx context.Context, id model.CategoryID, mutate func(*model.Category) error) error
	DeleteCategory(ctx context.Context, id model.CategoryID) error

	// Admin operations
	SaveAdmin(ctx context.Context, admin *model.Admin) error
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
}
