package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ninebox/sudoku-server/internal/game"
	"github.com/ninebox/sudoku-server/internal/sudoku"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g := game.New(sudoku.Easy, 3)
	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, g.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != g {
		t.Fatal("Get should return the stored pointer")
	}

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id err = %v, want ErrNotFound", err)
	}
}
