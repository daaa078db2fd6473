package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_model"
)

// ErrDuplicateName is returned when an algorithm name is already taken.
var ErrDuplicateName = errors.New("storage: algorithm name already exists")

// Algorithm is a named move sequence saved in the library.
type Algorithm struct {
	AlgorithmID string
	Name        string
	Notation    string
	MoveCount   int
	Order       *int
	Notes       *string
	CreatedAt   time.Time
}

// Moves parses the stored notation.
func (a Algorithm) Moves() ([]gocube.Move, error) {
	return gocube.ParseAlgorithm(a.Notation)
}

// AlgorithmRepository provides CRUD operations for algorithms.
type AlgorithmRepository struct {
	db         *DB
	orderLimit int
}

// NewAlgorithmRepository creates a new algorithm repository. orderLimit
// bounds the search for an algorithm's order when it is saved; 0 skips it.
func NewAlgorithmRepository(db *DB, orderLimit int) *AlgorithmRepository {
	return &AlgorithmRepository{db: db, orderLimit: orderLimit}
}

// Create validates notation and saves it under name.
func (r *AlgorithmRepository) Create(name, notation, notes string) (*Algorithm, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("algorithm name must not be empty")
	}

	moves, err := gocube.ParseAlgorithm(notation)
	if err != nil {
		return nil, err
	}

	a := &Algorithm{
		AlgorithmID: uuid.New().String(),
		Name:        name,
		Notation:    gocube.FormatMoves(moves),
		MoveCount:   len(moves),
		CreatedAt:   time.Now().UTC(),
	}
	if r.orderLimit > 0 {
		if n, err := gocube.Order(moves, r.orderLimit); err == nil {
			a.Order = &n
		}
	}
	if notes != "" {
		a.Notes = &notes
	}

	err = r.db.Transaction(func(tx *sql.Tx) error {
		var taken int
		if err := tx.QueryRow("SELECT COUNT(*) FROM algorithms WHERE name = ?", name).Scan(&taken); err != nil {
			return fmt.Errorf("failed to check algorithm name: %w", err)
		}
		if taken > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}

		_, err := tx.Exec(`
			INSERT INTO algorithms (algorithm_id, name, notation, move_count, order_n, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, a.AlgorithmID, a.Name, a.Notation, a.MoveCount, a.Order, a.Notes, a.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to create algorithm: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

const algorithmColumns = `algorithm_id, name, notation, move_count, order_n, notes, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlgorithm(row rowScanner) (*Algorithm, error) {
	var a Algorithm
	var order sql.NullInt64
	var notes sql.NullString
	var createdAtStr string

	if err := row.Scan(&a.AlgorithmID, &a.Name, &a.Notation, &a.MoveCount, &order, &notes, &createdAtStr); err != nil {
		return nil, err
	}

	if order.Valid {
		n := int(order.Int64)
		a.Order = &n
	}
	if notes.Valid {
		a.Notes = &notes.String
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &a, nil
}

// Get retrieves an algorithm by ID. It returns nil if none exists.
func (r *AlgorithmRepository) Get(algorithmID string) (*Algorithm, error) {
	row := r.db.QueryRow(`SELECT `+algorithmColumns+` FROM algorithms WHERE algorithm_id = ?`, algorithmID)
	a, err := scanAlgorithm(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get algorithm: %w", err)
	}
	return a, nil
}

// GetByName retrieves an algorithm by name. It returns nil if none exists.
func (r *AlgorithmRepository) GetByName(name string) (*Algorithm, error) {
	row := r.db.QueryRow(`SELECT `+algorithmColumns+` FROM algorithms WHERE name = ?`, name)
	a, err := scanAlgorithm(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get algorithm: %w", err)
	}
	return a, nil
}

// List retrieves algorithms ordered by name.
func (r *AlgorithmRepository) List(limit int) ([]Algorithm, error) {
	rows, err := r.db.Query(`
		SELECT `+algorithmColumns+`
		FROM algorithms
		ORDER BY name
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list algorithms: %w", err)
	}
	defer rows.Close()

	var algs []Algorithm
	for rows.Next() {
		a, err := scanAlgorithm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan algorithm: %w", err)
		}
		algs = append(algs, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list algorithms: %w", err)
	}

	return algs, nil
}

// Delete deletes an algorithm by name. It reports whether a row was removed.
func (r *AlgorithmRepository) Delete(name string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM algorithms WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to delete algorithm: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete algorithm: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of saved algorithms.
func (r *AlgorithmRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM algorithms").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count algorithms: %w", err)
	}
	return count, nil
}
