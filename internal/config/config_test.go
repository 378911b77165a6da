package config

import (
	"errors"
	"testing"

	"github.com/corvette-dev/fallbeam/internal/eval"
	"github.com/corvette-dev/fallbeam/internal/search"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := Preset{
		Name:    "aggressive",
		Weights: eval.DefaultWeights(),
		Configs: search.BotConfigs{Width: 64, Depth: 10, Branch: 20},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("aggressive")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Configs != want.Configs {
		t.Fatalf("expected configs %+v, got %+v", want.Configs, got.Configs)
	}
	if got.Weights.Height != want.Weights.Height {
		t.Fatalf("expected height weight %d, got %d", want.Weights.Height, got.Weights.Height)
	}
}

func TestLoadMissingPresetReturnsErrPresetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load("does-not-exist")
	if !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestListReturnsSavedNames(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Save(Preset{Name: name, Weights: eval.DefaultWeights()}); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(names))
	}
}

func TestDeleteRemovesPreset(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(Preset{Name: "temp", Weights: eval.DefaultWeights()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete("temp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := s.Load("temp")
	if !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound after delete, got %v", err)
	}
}
