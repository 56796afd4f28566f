package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coordinet/internal/datastore"
)

// Backup writes the whole store to path as JSON.
func (a *App) Backup(ctx context.Context, path string) error {
	snap, err := a.store.Snapshot(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	a.log.Info(ctx, "backup written", "path", path)
	a.println("Backup written to", path)
	return nil
}

// Restore replaces the store with the backup at path. The session comes
// from the backup too.
func (a *App) Restore(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var snap datastore.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode backup: %w", err)
	}
	if err := a.store.Restore(ctx, &snap); err != nil {
		return err
	}

	a.session = snap.Session
	a.println("Restored from", path)
	return nil
}
