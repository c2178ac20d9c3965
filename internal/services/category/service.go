// Package category implements the membership model: state transitions on
// the category <-> player relation and their capacity/uniqueness rules.
package category

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/storage"
)

// Service manages auction categories and their player membership
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new category Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create creates a new empty category with the given name
func (s *Service) Create(ctx context.Context, name string) (*model.Category, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewValidationError("name", "category name is required")
	}

	category := &model.Category{
		Name:    name,
		Players: []model.PlayerID{},
	}

	id, err := s.storage.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		slog.String("category_id", string(id)),
		slog.String("name", name),
	)
	return category, nil
}

// AddPlayer appends a player id to the category's membership.
// Preconditions are checked in order: the category must exist, must be
// below capacity, and must not already contain the player. The mutation
// runs atomically in the store, so a failed precondition leaves the
// category untouched even under concurrent admins.
func (s *Service) AddPlayer(ctx context.Context, categoryID model.CategoryID, playerID model.PlayerID) error {
	if err := s.ready(); err != nil {
		return err
	}

	err := s.storage.UpdateCategory(ctx, categoryID, func(c *model.Category) error {
		if c.IsFull() {
			return model.ErrCategoryFull
		}
		if c.HasPlayer(playerID) {
			return model.ErrAlreadyInCategory
		}
		c.Players = append(c.Players, playerID)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("player added to category",
		slog.String("category_id", string(categoryID)),
		slog.String("player_id", string(playerID)),
	)
	return nil
}

// RemovePlayer filters a player id out of the category's membership.
// Removal has set-difference semantics: removing an id that is not a
// member succeeds without changing anything.
func (s *Service) RemovePlayer(ctx context.Context, categoryID model.CategoryID, playerID model.PlayerID) error {
	if err := s.ready(); err != nil {
		return err
	}

	err := s.storage.UpdateCategory(ctx, categoryID, func(c *model.Category) error {
		kept := c.Players[:0]
		for _, id := range c.Players {
			if id != playerID {
				kept = append(kept, id)
			}
		}
		c.Players = kept
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("player removed from category",
		slog.String("category_id", string(categoryID)),
		slog.String("player_id", string(playerID)),
	)
	return nil
}

// Delete removes the category unconditionally. Player records referenced
// by its membership list are not touched.
func (s *Service) Delete(ctx context.Context, categoryID model.CategoryID) error {
	if err := s.ready(); err != nil {
		return err
	}

	if err := s.storage.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	s.logger.Info("category deleted", slog.String("category_id", string(categoryID)))
	return nil
}

// Get retrieves a category by id
func (s *Service) Get(ctx context.Context, id model.CategoryID) (*model.Category, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.storage.GetCategory(ctx, id)
}

// List returns all categories, in no particular order
func (s *Service) List(ctx context.Context) ([]*model.Category, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.storage.ListCategories(ctx)
}

// ResolveMembers fetches the full player record for each member id, in
// membership order. Dangling ids (players deleted after being added) are
// silently dropped, never surfaced as an error.
func (s *Service) ResolveMembers(ctx context.Context, category *model.Category) ([]*model.Player, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	members := make([]*model.Player, 0, len(category.Players))
	for _, id := range category.Players {
		player, err := s.storage.GetPlayer(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		members = append(members, player)
	}
	return members, nil
}

func (s *Service) ready() error {
	if s.storage == nil {
		return model.ErrNotConfigured
	}
	return nil
}
