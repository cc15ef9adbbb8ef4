package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mstallmo/agentic-protos/src/util"
)

// MainCounterID is the id of the counter that is guaranteed to exist
// once the store has initialized.
const MainCounterID = "main_counter"

// MemoryPath opens an ephemeral in-memory store instead of a file.
const MemoryPath = ":memory:"

// Database is a handle to the SQLite-backed counter store. All access to
// counter rows goes through it; it is safe for concurrent use.
type Database struct {
	db *sql.DB
}

// CounterInfo is a single row of a List result.
type CounterInfo struct {
	ID    string
	Value int64
}

// CounterStats is a point-in-time snapshot of a counter and its derived
// statistics.
type CounterStats struct {
	Value            int64
	TotalIncrements  int64
	AverageIncrement float64
	HighestValue     int64
}

// Open opens (creating if necessary) the store at path, applies any
// pending schema migrations and seeds the main counter. The whole
// bootstrap is idempotent, so it runs on every process start.
func Open(path string) (*Database, error) {
	var dsn string
	if path == MemoryPath {
		dsn = "file::memory:?_busy_timeout=5000&_txlock=immediate"
	} else {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL", path)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == MemoryPath {
		// Every go-sqlite3 connection to :memory: is its own database,
		// so the pool must not grow past one connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &Database{db: db}
	ctx := context.Background()
	if err := d.applyMigrations(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.ensureMainCounter(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) ensureMainCounter(ctx context.Context) error {
	var one int
	err := d.db.QueryRowContext(ctx,
		"SELECT 1 FROM counters WHERE id = ?", MainCounterID).Scan(&one)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		log.Printf("Creating main counter with ID: %s", MainCounterID)
		_, err = d.db.ExecContext(ctx,
			"INSERT INTO counters (id, value, description) VALUES (?, 0, ?)",
			MainCounterID, "Main application counter")
		if err != nil {
			return fmt.Errorf("seed main counter: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("seed main counter: %w", err)
	}
}

// Get returns the current value of the counter. A counter that does not
// exist yet is created with value 0.
func (d *Database) Get(ctx context.Context, id string) (int64, error) {
	var value int64
	err := d.db.QueryRowContext(ctx,
		"SELECT value FROM counters WHERE id = ?", id).Scan(&value)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, sql.ErrNoRows):
		if err := d.Set(ctx, id, 0); err != nil {
			return 0, err
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("get counter %q: %w", id, err)
	}
}

// Set upserts the counter row, replacing the stored value
// unconditionally. Derived statistics are left untouched; only
// Increment maintains them.
func (d *Database) Set(ctx context.Context, id string, value int64) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO counters (id, value) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET value = excluded.value`,
		id, value)
	if err != nil {
		return fmt.Errorf("set counter %q: %w", id, err)
	}
	return nil
}

// Increment adds amount to the counter and returns the new value. The
// read-modify-write plus the statistics update commit as one
// transaction; the DSN's immediate transaction lock serializes
// concurrent increments so no update is lost.
func (d *Database) Increment(ctx context.Context, id string, amount int64) (int64, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("increment counter %q: %w", id, err)
	}
	defer tx.Rollback()

	var value, total, highest int64
	var average float64
	err = tx.QueryRowContext(ctx, `
		SELECT value, total_increments, average_increment, highest_value
		FROM counters WHERE id = ?`, id).
		Scan(&value, &total, &average, &highest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("increment counter %q: %w", id, err)
	}

	newValue := value + amount
	newTotal := total + 1
	newAverage := (average*float64(total) + float64(amount)) / float64(newTotal)
	newHighest := highest
	if newValue > newHighest {
		newHighest = newValue
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO counters (id, value, total_increments, average_increment, highest_value)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			value = excluded.value,
			total_increments = excluded.total_increments,
			average_increment = excluded.average_increment,
			highest_value = excluded.highest_value`,
		id, newValue, newTotal, newAverage, newHighest)
	if err != nil {
		return 0, fmt.Errorf("increment counter %q: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("increment counter %q: %w", id, err)
	}
	return newValue, nil
}

// Stats returns a snapshot of the counter and its derived statistics.
// Unlike Get it does not create missing counters; it reports
// util.ErrCounterNotFound instead.
func (d *Database) Stats(ctx context.Context, id string) (*CounterStats, error) {
	var s CounterStats
	err := d.db.QueryRowContext(ctx, `
		SELECT value, total_increments, average_increment, highest_value
		FROM counters WHERE id = ?`, id).
		Scan(&s.Value, &s.TotalIncrements, &s.AverageIncrement, &s.HighestValue)
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, util.ErrCounterNotFound
	default:
		return nil, fmt.Errorf("stats for counter %q: %w", id, err)
	}
}

// List returns all counters ordered by id.
func (d *Database) List(ctx context.Context) ([]CounterInfo, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT id, value FROM counters ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list counters: %w", err)
	}
	defer rows.Close()

	var counters []CounterInfo
	for rows.Next() {
		var c CounterInfo
		if err := rows.Scan(&c.ID, &c.Value); err != nil {
			return nil, fmt.Errorf("list counters: %w", err)
		}
		counters = append(counters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list counters: %w", err)
	}
	return counters, nil
}

// Delete removes the counter row and reports whether it existed. A Get
// after Delete recreates the counter at 0.
func (d *Database) Delete(ctx context.Context, id string) (bool, error) {
	res, err := d.db.ExecContext(ctx,
		"DELETE FROM counters WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete counter %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete counter %q: %w", id, err)
	}
	return n > 0, nil
}
