// Package catalogstore persists snapshots of a finished catalog's publish map in SQLite.
package catalogstore

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inful/mdfp"
	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// Snapshot describes one saved catalog.
type Snapshot struct {
	ID        string
	CreatedAt time.Time
	Style     string
	Files     int
}

// Record is one file of a snapshot.
type Record struct {
	Key         string
	ID          resource.Identity
	MediaType   string
	OutPath     string
	URL         string
	AliasOf     string
	Fingerprint string
}

// Store is a SQLite-backed snapshot store.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Open opens (creating if needed) the snapshot database at path. Use ":memory:" for a
// throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, ferrors.StorageError("open sqlite database").WithCause(err).
			WithContext("path", path).
			Build()
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, ferrors.StorageError("initialize schema").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		style TEXT NOT NULL,
		file_count INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS records (
		snapshot_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		resource_key TEXT NOT NULL,
		component TEXT NOT NULL,
		version TEXT NOT NULL,
		module TEXT NOT NULL,
		family TEXT NOT NULL,
		relative TEXT NOT NULL,
		media_type TEXT NOT NULL,
		out_path TEXT NOT NULL,
		url TEXT NOT NULL,
		alias_of TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, resource_key)
	);
	CREATE INDEX IF NOT EXISTS idx_records_url ON records(snapshot_id, url);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes every file of cat as a new snapshot and returns its ID.
func (s *Store) Save(ctx context.Context, cat *catalog.Catalog) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	files := cat.GetFiles()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", storageError(err, "begin snapshot")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO snapshots (id, created_at, style, file_count) VALUES (?, ?, ?, ?)",
		id, s.now().Unix(), string(cat.Style()), len(files),
	); err != nil {
		return "", storageError(err, "insert snapshot")
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records
		(snapshot_id, seq, resource_key, component, version, module, family, relative, media_type, out_path, url, alias_of, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", storageError(err, "prepare record insert")
	}
	defer func() { _ = stmt.Close() }()

	for seq, f := range files {
		r := recordOf(f)
		if _, err := stmt.ExecContext(ctx,
			id, seq, r.Key, r.ID.Component, r.ID.Version, r.ID.Module, r.ID.Family.String(), r.ID.Relative,
			r.MediaType, r.OutPath, r.URL, r.AliasOf, r.Fingerprint,
		); err != nil {
			return "", ferrors.StorageError("insert record").WithCause(err).
				WithContext("id", r.Key).
				Build()
		}
	}

	if err := tx.Commit(); err != nil {
		return "", storageError(err, "commit snapshot")
	}
	return id, nil
}

func recordOf(f *catalog.File) Record {
	r := Record{
		Key:       f.ID.Key(),
		ID:        f.ID,
		MediaType: f.MediaType,
		URL:       f.URL(),
	}
	if f.Out != nil {
		r.OutPath = f.Out.Path
	}
	if f.Rel != nil {
		r.AliasOf = f.Rel.Key()
	}
	if len(f.Contents) > 0 {
		r.Fingerprint = mdfp.CalculateFingerprintFromParts("", string(f.Contents))
	}
	return r
}

// Snapshots lists saved snapshots, newest first.
func (s *Store) Snapshots(ctx context.Context) ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, style, file_count FROM snapshots ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, storageError(err, "query snapshots")
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var created int64
		if err := rows.Scan(&snap.ID, &created, &snap.Style, &snap.Files); err != nil {
			return nil, storageError(err, "scan snapshot")
		}
		snap.CreatedAt = time.Unix(created, 0)
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "iterate snapshots")
	}
	return out, nil
}

const recordColumns = "resource_key, component, version, module, family, relative, media_type, out_path, url, alias_of, fingerprint"

// Records returns the files of a snapshot in their catalog order.
func (s *Store) Records(ctx context.Context, snapshotID string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE snapshot_id = ? ORDER BY seq", snapshotID)
	if err != nil {
		return nil, storageError(err, "query records")
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "iterate records")
	}
	return out, nil
}

// LookupURL returns the record of a snapshot published at url, or nil.
func (s *Store) LookupURL(ctx context.Context, snapshotID, url string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE snapshot_id = ? AND url = ? ORDER BY seq LIMIT 1", snapshotID, url)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var r Record
	var family string
	err := row.Scan(&r.Key, &r.ID.Component, &r.ID.Version, &r.ID.Module, &family, &r.ID.Relative,
		&r.MediaType, &r.OutPath, &r.URL, &r.AliasOf, &r.Fingerprint)
	if err != nil {
		return Record{}, storageError(err, "scan record")
	}
	r.ID.Family, _ = resource.ParseFamily(family)
	return r, nil
}

func storageError(err error, message string) error {
	return ferrors.StorageError(message).WithCause(err).Build()
}
