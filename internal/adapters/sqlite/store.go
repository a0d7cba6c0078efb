package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"linkhoard/internal/application"
	"linkhoard/internal/domain"
	"linkhoard/internal/ports"

	_ "modernc.org/sqlite"
)

// Store implements ports.LinkStore on a single-table SQLite database kept
// beside the application data. Every mutating method runs inside one
// transaction, so positions are renumbered and committed atomically.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements LinkStore
var _ ports.LinkStore = (*Store)(nil)

const timeLayout = time.RFC3339

// Open creates or opens the links database under dataDir.
func Open(dataDir string) (*Store, error) {
	// Expand ~ in path
	if len(dataDir) > 0 && dataDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[1:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "links.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL for crash-atomicity, pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			added_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_position ON links(position);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.dbPath
}

// Add appends a link at the end of the ordering and returns the stored row.
func (s *Store) Add(name, path, tags string) (*domain.Link, error) {
	if err := application.ValidateRequired("path", path); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, persist("add", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(position), -1) + 1 FROM links`).Scan(&next); err != nil {
		return nil, persist("add", err)
	}

	addedAt := time.Now().Truncate(time.Second)
	res, err := tx.Exec(`
		INSERT INTO links (name, path, tags, position, added_at)
		VALUES (?, ?, ?, ?, ?)
	`, name, path, tags, next, addedAt.Format(timeLayout))
	if err != nil {
		return nil, persist("add", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, persist("add", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, persist("add", err)
	}

	return &domain.Link{
		ID:       id,
		Name:     name,
		Path:     path,
		Tags:     tags,
		Position: next,
		AddedAt:  addedAt,
	}, nil
}

// Update mutates only the supplied fields of one link.
func (s *Store) Update(id int64, fields ports.UpdateFields) error {
	if fields.Path != nil {
		if err := application.ValidateRequired("path", *fields.Path); err != nil {
			return err
		}
	}

	var sets []string
	var args []any
	if fields.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *fields.Name)
	}
	if fields.Path != nil {
		sets = append(sets, "path = ?")
		args = append(args, *fields.Path)
	}
	if fields.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, *fields.Tags)
	}
	if len(sets) == 0 {
		// Nothing to change; still report a missing row.
		_, err := s.Get(id)
		return err
	}
	args = append(args, id)

	res, err := s.db.Exec(
		fmt.Sprintf("UPDATE links SET %s WHERE id = ?", strings.Join(sets, ", ")), args...)
	if err != nil {
		return persist("update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return persist("update", err)
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

// Delete removes one link and closes the gap it leaves: every row with a
// greater position shifts down by one.
func (s *Store) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persist("delete", err)
	}
	defer tx.Rollback()

	var pos int
	err = tx.QueryRow(`SELECT position FROM links WHERE id = ?`, id).Scan(&pos)
	if err == sql.ErrNoRows {
		return application.ErrNotFound
	}
	if err != nil {
		return persist("delete", err)
	}

	if _, err := tx.Exec(`DELETE FROM links WHERE id = ?`, id); err != nil {
		return persist("delete", err)
	}
	if _, err := tx.Exec(`UPDATE links SET position = position - 1 WHERE position > ?`, pos); err != nil {
		return persist("delete", err)
	}
	if err := tx.Commit(); err != nil {
		return persist("delete", err)
	}
	return nil
}

// Reorder moves one link to newPos, shifting the rows in between by one so
// positions stay dense and duplicate-free.
func (s *Store) Reorder(id int64, newPos int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persist("reorder", err)
	}
	defer tx.Rollback()

	var oldPos int
	err = tx.QueryRow(`SELECT position FROM links WHERE id = ?`, id).Scan(&oldPos)
	if err == sql.ErrNoRows {
		return application.ErrNotFound
	}
	if err != nil {
		return persist("reorder", err)
	}

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&count); err != nil {
		return persist("reorder", err)
	}
	if newPos < 0 || newPos >= count {
		return &application.ValidationError{
			Field:   "position",
			Message: fmt.Sprintf("position %d out of range [0, %d]", newPos, count-1),
		}
	}
	if newPos == oldPos {
		return tx.Commit()
	}

	if newPos > oldPos {
		_, err = tx.Exec(`
			UPDATE links SET position = position - 1
			WHERE position > ? AND position <= ?
		`, oldPos, newPos)
	} else {
		_, err = tx.Exec(`
			UPDATE links SET position = position + 1
			WHERE position >= ? AND position < ?
		`, newPos, oldPos)
	}
	if err != nil {
		return persist("reorder", err)
	}

	if _, err := tx.Exec(`UPDATE links SET position = ? WHERE id = ?`, newPos, id); err != nil {
		return persist("reorder", err)
	}
	if err := tx.Commit(); err != nil {
		return persist("reorder", err)
	}
	return nil
}

// ReplaceAll swaps the whole table for the given links in one transaction.
// Positions are re-derived from slice order; ids are assigned fresh.
func (s *Store) ReplaceAll(links []domain.Link) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persist("replace", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM links`); err != nil {
		return persist("replace", err)
	}
	now := time.Now().Truncate(time.Second)
	for i, l := range links {
		addedAt := l.AddedAt
		if addedAt.IsZero() {
			addedAt = now
		}
		_, err := tx.Exec(`
			INSERT INTO links (name, path, tags, position, added_at)
			VALUES (?, ?, ?, ?, ?)
		`, l.Name, l.Path, l.Tags, i, addedAt.Format(timeLayout))
		if err != nil {
			return persist("replace", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return persist("replace", err)
	}
	return nil
}

// Get returns a single link by id.
func (s *Store) Get(id int64) (*domain.Link, error) {
	row := s.db.QueryRow(`
		SELECT id, name, path, tags, position, added_at
		FROM links WHERE id = ?
	`, id)
	link, err := scanLink(row)
	if err == sql.ErrNoRows {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, persist("get", err)
	}
	return link, nil
}

// List returns links ordered by position. A non-empty filter keeps rows
// whose name, path or tags contain it, case-insensitively, without
// disturbing the stored order.
func (s *Store) List(filter string) ([]domain.Link, error) {
	var rows *sql.Rows
	var err error
	if filter == "" {
		rows, err = s.db.Query(`
			SELECT id, name, path, tags, position, added_at
			FROM links ORDER BY position ASC
		`)
	} else {
		like := "%" + filter + "%"
		rows, err = s.db.Query(`
			SELECT id, name, path, tags, position, added_at
			FROM links
			WHERE lower(name) LIKE lower(?)
			   OR lower(path) LIKE lower(?)
			   OR lower(tags) LIKE lower(?)
			ORDER BY position ASC
		`, like, like, like)
	}
	if err != nil {
		return nil, persist("list", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, persist("list", err)
		}
		links = append(links, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, persist("list", err)
	}
	return links, nil
}

// Count returns the number of stored links.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&n); err != nil {
		return 0, persist("count", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (*domain.Link, error) {
	var link domain.Link
	var addedAt string
	err := row.Scan(&link.ID, &link.Name, &link.Path, &link.Tags, &link.Position, &addedAt)
	if err != nil {
		return nil, err
	}
	link.AddedAt, err = time.Parse(timeLayout, addedAt)
	if err != nil {
		return nil, fmt.Errorf("bad added_at for link %d: %w", link.ID, err)
	}
	return &link, nil
}

func persist(op string, err error) error {
	return &application.PersistenceError{Op: op, Err: err}
}
