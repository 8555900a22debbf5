package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"lexdesk/internal/model"
	"lexdesk/internal/workspace"
)

const sqliteFileName = "index.sqlite"

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), sqliteFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness with concurrent CLI invocations.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS windows (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			stack_order INTEGER NOT NULL,
			pinned INTEGER NOT NULL,
			minimized INTEGER NOT NULL,
			hidden INTEGER NOT NULL,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_windows_stack ON windows(stack_order);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s Store) loadSQLite(ctx context.Context) (*workspace.State, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	hasState, err := sqliteHasAnyRows(ctx, db)
	if err != nil {
		return nil, err
	}
	if !hasState {
		// One-time import from a legacy desk.json if present.
		if b, err := os.ReadFile(s.legacyDeskPath()); err == nil && len(b) > 0 {
			var legacy workspace.State
			if err := json.Unmarshal(b, &legacy); err == nil {
				if legacy.Version == 0 {
					legacy.Version = 1
				}
				if err := s.saveSQLiteTo(ctx, db, &legacy); err != nil {
					return nil, err
				}
			}
		}
	}

	return loadStateFromSQLite(ctx, db)
}

func (s Store) saveSQLite(ctx context.Context, st *workspace.State) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return s.saveSQLiteTo(ctx, db, st)
}

func (s Store) saveSQLiteTo(ctx context.Context, db *sql.DB, st *workspace.State) error {
	if st == nil {
		return errors.New("nil state")
	}
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta(k, v) VALUES(?, ?)`, "version", strconv.Itoa(st.Version)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta(k, v) VALUES(?, ?)`, "next_stack", strconv.Itoa(st.NextStack)); err != nil {
		return err
	}

	// Replace-all strategy: simple and safe for workspace-sized data.
	if _, err := tx.ExecContext(ctx, `DELETE FROM windows`); err != nil {
		return err
	}
	nowMs := time.Now().UTC().UnixMilli()
	for _, w := range st.Windows {
		raw, err := json.Marshal(w)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO windows(id, label, stack_order, pinned, minimized, hidden, json, updated_at_unixms)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.Label, w.StackOrder, boolToInt(w.Pinned), boolToInt(w.Minimized), boolToInt(w.Hidden), string(raw), nowMs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func sqliteHasAnyRows(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM windows`).Scan(&n); err != nil {
		// Missing table means empty.
		return false, nil
	}
	if n > 0 {
		return true, nil
	}
	var v string
	if err := db.QueryRowContext(ctx, `SELECT v FROM meta WHERE k = 'next_stack'`).Scan(&v); err == nil && strings.TrimSpace(v) != "" {
		return true, nil
	}
	return false, nil
}

func loadStateFromSQLite(ctx context.Context, db *sql.DB) (*workspace.State, error) {
	out := workspace.NewState()

	readMeta := func(k string) string {
		var v string
		_ = db.QueryRowContext(ctx, `SELECT v FROM meta WHERE k = ?`, k).Scan(&v)
		return strings.TrimSpace(v)
	}
	if v := readMeta("version"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			out.Version = n
		}
	}
	if v := readMeta("next_stack"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			out.NextStack = n
		}
	}

	rows, err := db.QueryContext(ctx, `SELECT json FROM windows`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return nil, err
		}
		var w model.Window
		if err := json.Unmarshal([]byte(js), &w); err != nil {
			return nil, fmt.Errorf("corrupt window row: %w", err)
		}
		out.Windows = append(out.Windows, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Stable order for callers: back-to-front by stack order.
	sort.SliceStable(out.Windows, func(i, j int) bool {
		return out.Windows[i].StackOrder < out.Windows[j].StackOrder
	})

	// Keep the counter ahead of whatever was persisted.
	for _, w := range out.Windows {
		if w.StackOrder >= out.NextStack {
			out.NextStack = w.StackOrder + 1
		}
	}

	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
