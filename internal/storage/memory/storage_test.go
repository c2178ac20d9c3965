package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SiddheshD91/PPL2026/internal/dependencies/mocks"
	"github.com/SiddheshD91/PPL2026/internal/model"
)

type StorageSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	s.storage = New(s.clock)
	s.ctx = context.Background()
}

func (s *StorageSuite) createPlayer(name string) model.PlayerID {
	id, err := s.storage.CreatePlayer(s.ctx, &model.Player{
		Name:       name,
		TshirtSize: 40,
		DOB:        "2000-01-01",
		Age:        26,
	})
	s.Require().NoError(err)
	return id
}

// Player operations

func (s *StorageSuite) TestCreatePlayerAssignsIDAndTimestamp() {
	player := &model.Player{Name: "Rohit"}

	id, err := s.storage.CreatePlayer(s.ctx, player)
	s.Require().NoError(err)

	s.NotEmpty(id)
	s.Equal(id, player.ID)
	s.Equal(s.clock.Now(), player.CreatedAt)
}

func (s *StorageSuite) TestGetPlayerRoundTrip() {
	id := s.createPlayer("Rohit")

	player, err := s.storage.GetPlayer(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Rohit", player.Name)
	s.Equal(40, player.TshirtSize)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	s.createPlayer("One")
	s.createPlayer("Two")

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestUpdatePlayerPartial() {
	id := s.createPlayer("Rohit")
	s.clock.Advance(time.Hour)

	name := "Rohit Sharma"
	err := s.storage.UpdatePlayer(s.ctx, id, model.PlayerUpdate{Name: &name})
	s.Require().NoError(err)

	player, _ := s.storage.GetPlayer(s.ctx, id)
	s.Equal("Rohit Sharma", player.Name)
	s.Equal(40, player.TshirtSize)
	// Creation time never moves on update
	s.Equal(time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC), player.CreatedAt)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	name := "x"
	err := s.storage.UpdatePlayer(s.ctx, "missing", model.PlayerUpdate{Name: &name})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	id := s.createPlayer("Rohit")

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, id))

	_, err := s.storage.GetPlayer(s.ctx, id)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Returned records are copies; mutating them must not leak back into
// the store

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	id := s.createPlayer("Rohit")

	player, _ := s.storage.GetPlayer(s.ctx, id)
	player.Name = "Mutated"

	stored, _ := s.storage.GetPlayer(s.ctx, id)
	s.Equal("Rohit", stored.Name)
}

func (s *StorageSuite) TestGetCategoryReturnsCopy() {
	id, err := s.storage.CreateCategory(s.ctx, &model.Category{
		Name:    "A1 Batsman",
		Players: []model.PlayerID{"p1"},
	})
	s.Require().NoError(err)

	category, _ := s.storage.GetCategory(s.ctx, id)
	category.Players[0] = "mutated"
	category.Players = append(category.Players, "extra")

	stored, _ := s.storage.GetCategory(s.ctx, id)
	s.Equal([]model.PlayerID{"p1"}, stored.Players)
}

// Category operations

func (s *StorageSuite) TestCategoryRoundTrip() {
	id, err := s.storage.CreateCategory(s.ctx, &model.Category{Name: "Bowlers"})
	s.Require().NoError(err)

	category, err := s.storage.GetCategory(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Bowlers", category.Name)
	s.Equal(s.clock.Now(), category.CreatedAt)
}

func (s *StorageSuite) TestGetCategoryNotFound() {
	_, err := s.storage.GetCategory(s.ctx, "missing")
	s.ErrorIs(err, model.ErrCategoryNotFound)
}

func (s *StorageSuite) TestUpdateCategoryAppliesMutation() {
	id, err := s.storage.CreateCategory(s.ctx, &model.Category{Name: "Bowlers"})
	s.Require().NoError(err)

	err = s.storage.UpdateCategory(s.ctx, id, func(c *model.Category) error {
		c.Players = append(c.Players, "p1")
		return nil
	})
	s.Require().NoError(err)

	category, _ := s.storage.GetCategory(s.ctx, id)
	s.Equal([]model.PlayerID{"p1"}, category.Players)
}

func (s *StorageSuite) TestUpdateCategoryMutationErrorLeavesStateUnchanged() {
	id, err := s.storage.CreateCategory(s.ctx, &model.Category{
		Name:    "Bowlers",
		Players: []model.PlayerID{"p1"},
	})
	s.Require().NoError(err)

	boom := errors.New("boom")
	err = s.storage.UpdateCategory(s.ctx, id, func(c *model.Category) error {
		c.Players = append(c.Players, "p2")
		return boom
	})
	s.ErrorIs(err, boom)

	category, _ := s.storage.GetCategory(s.ctx, id)
	s.Equal([]model.PlayerID{"p1"}, category.Players)
}

func (s *StorageSuite) TestUpdateCategoryNotFound() {
	err := s.storage.UpdateCategory(s.ctx, "missing", func(c *model.Category) error {
		return nil
	})
	s.ErrorIs(err, model.ErrCategoryNotFound)
}

func (s *StorageSuite) TestDeleteCategory() {
	id, err := s.storage.CreateCategory(s.ctx, &model.Category{Name: "Bowlers"})
	s.Require().NoError(err)

	s.Require().NoError(s.storage.DeleteCategory(s.ctx, id))

	_, err = s.storage.GetCategory(s.ctx, id)
	s.ErrorIs(err, model.ErrCategoryNotFound)
}

// Admin operations

func (s *StorageSuite) TestAdminRoundTrip() {
	err := s.storage.SaveAdmin(s.ctx, &model.Admin{
		Email:        "admin@ppl.local",
		PasswordHash: "hash",
		CreatedAt:    s.clock.Now(),
	})
	s.Require().NoError(err)

	admin, err := s.storage.GetAdminByEmail(s.ctx, "admin@ppl.local")
	s.Require().NoError(err)
	s.Equal("hash", admin.PasswordHash)
}

func (s *StorageSuite) TestGetAdminNotFound() {
	_, err := s.storage.GetAdminByEmail(s.ctx, "nobody@ppl.local")
	s.ErrorIs(err, model.ErrAdminNotFound)
}
