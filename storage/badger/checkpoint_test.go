package badger

import (
	"context"
	"testing"

	"github.com/poiesic/peermatch/core"
)

func TestCheckpointLifecycle(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	// No checkpoint saved yet
	loaded, err := repos.Checkpoints.LoadCheckpoint(ctx, "embed-backfill")
	if err != nil {
		t.Fatalf("Failed to load missing checkpoint: %v", err)
	}
	if loaded != nil {
		t.Fatalf("Expected nil checkpoint, got %+v", loaded)
	}

	// Save and reload
	checkpoint := &core.Checkpoint{
		ProcessorType: "embed-backfill",
		LastProfileId: core.ID(42),
		Processed:     100,
	}
	if err := repos.Checkpoints.SaveCheckpoint(ctx, checkpoint); err != nil {
		t.Fatalf("Failed to save checkpoint: %v", err)
	}

	loaded, err = repos.Checkpoints.LoadCheckpoint(ctx, "embed-backfill")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected checkpoint, got nil")
	}
	if loaded.LastProfileId != core.ID(42) {
		t.Errorf("Expected last profile 42, got %d", loaded.LastProfileId)
	}
	if loaded.Processed != 100 {
		t.Errorf("Expected 100 processed, got %d", loaded.Processed)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}

	// Checkpoints are keyed by processor type
	other, err := repos.Checkpoints.LoadCheckpoint(ctx, "reindex")
	if err != nil {
		t.Fatalf("Failed to load other checkpoint: %v", err)
	}
	if other != nil {
		t.Fatalf("Expected nil checkpoint for other processor, got %+v", other)
	}

	// Clear removes it; clearing again is a no-op
	if err := repos.Checkpoints.ClearCheckpoint(ctx, "embed-backfill"); err != nil {
		t.Fatalf("Failed to clear checkpoint: %v", err)
	}
	if err := repos.Checkpoints.ClearCheckpoint(ctx, "embed-backfill"); err != nil {
		t.Fatalf("Failed to clear cleared checkpoint: %v", err)
	}

	loaded, err = repos.Checkpoints.LoadCheckpoint(ctx, "embed-backfill")
	if err != nil {
		t.Fatalf("Failed to load cleared checkpoint: %v", err)
	}
	if loaded != nil {
		t.Fatalf("Expected nil after clear, got %+v", loaded)
	}
}
