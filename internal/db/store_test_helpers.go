package db

import (
	"context"
	"fmt"
	"testing"
)

// NewTestConfig returns a DBConfig for in-memory SQLite testing
func NewTestConfig() DBConfig {
	return DBConfig{
		Type: DialectSQLite,
		Path: ":memory:",
	}
}

// NewTestConfigWithPath returns a DBConfig for SQLite testing with a specific path
func NewTestConfigWithPath(path string) DBConfig {
	return DBConfig{
		Type: DialectSQLite,
		Path: path,
	}
}

// NewTestStore opens a migrated, empty store and closes it when the test ends.
func NewTestStore(t testing.TB, cfg DBConfig) *Store {
	t.Helper()

	store, err := NewStore(cfg)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test store: %v", err)
	}
	return store
}

// InsertDraws writes fixture rows. Nothing outside tests and local seeding
// calls it: the service itself never writes to the results table.
func (s *Store) InsertDraws(ctx context.Context, draws ...Draw) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.rebind(
		"INSERT INTO lotto_max_results ("+drawColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"))
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, d := range draws {
		if _, err := stmt.ExecContext(ctx, d.DrawDate, d.Number1, d.Number2, d.Number3, d.Number4,
			d.Number5, d.Number6, d.Number7, d.BonusNumber); err != nil {
			return fmt.Errorf("insert draw %s: %w", d.DrawDate, err)
		}
	}
	return tx.Commit()
}

// NewDraw builds a fixture draw from an ISO date and the eight drawn numbers.
func NewDraw(date string, numbers [7]int, bonus int) Draw {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return Draw{
		DrawDate:    d,
		Number1:     numbers[0],
		Number2:     numbers[1],
		Number3:     numbers[2],
		Number4:     numbers[3],
		Number5:     numbers[4],
		Number6:     numbers[5],
		Number7:     numbers[6],
		BonusNumber: bonus,
	}
}
