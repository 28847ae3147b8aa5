// Package logstore persists cycle logs to a sqlite database.
package logstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
)

// Store is a cycle log database.
type Store struct {
	*sql.DB
	path string
	log  zerolog.Logger
}

// Session describes one controller run.
type Session struct {
	ID           uuid.UUID
	StartedAt    int64 // unix microseconds
	BlueTeam     bool
	Simulation   bool
	RadioChannel int
	Version      string
}

// Record is one stored cycle log.
type Record struct {
	ID        int64
	Session   uuid.UUID
	StartTime int64 // unix microseconds
	ManualID  int
	Robots    int
	// Data is the encoded packet.LogFrame.
	Data []byte
}

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=ON",
}

// Open opens or creates the database at path and applies pending migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log database: %w", err)
	}
	// A single connection serializes the writer with admin queries.
	db.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	s := &Store{DB: db, path: path, log: monitoring.Component("logstore")}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// StartSession records a new session and returns its id.
func (s *Store) StartSession(ctx context.Context, sess Session) (uuid.UUID, error) {
	if sess.ID == uuid.Nil {
		sess.ID = uuid.New()
	}
	_, err := s.ExecContext(ctx, `
		INSERT INTO sessions (session_id, started_at, blue_team, simulation, radio_channel, version)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID.String(), sess.StartedAt, sess.BlueTeam, sess.Simulation, sess.RadioChannel, sess.Version)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert session: %w", err)
	}
	s.log.Info().Str("session", sess.ID.String()).Msg("log session started")
	return sess.ID, nil
}

// Sessions lists every session, newest first.
func (s *Store) Sessions(ctx context.Context) ([]Session, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT session_id, started_at, blue_team, simulation, radio_channel, version
		FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var id string
		if err := rows.Scan(&id, &sess.StartedAt, &sess.BlueTeam, &sess.Simulation, &sess.RadioChannel, &sess.Version); err != nil {
			return nil, err
		}
		if sess.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("session %q: %w", id, err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// InsertFrames stores records in one transaction.
func (s *Store) InsertFrames(ctx context.Context, records []Record) (err error) {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO frames (session_id, start_time, manual_id, robots, data)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		if _, err = stmt.ExecContext(ctx, r.Session.String(), r.StartTime, r.ManualID, r.Robots, r.Data); err != nil {
			return fmt.Errorf("failed to insert frame: %w", err)
		}
	}
	return tx.Commit()
}

// Frames returns up to limit records of session in time order, starting
// after the record with id after.
func (s *Store) Frames(ctx context.Context, session uuid.UUID, after int64, limit int) ([]Record, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT frame_id, start_time, manual_id, robots, data
		FROM frames
		WHERE session_id = ? AND frame_id > ?
		ORDER BY frame_id
		LIMIT ?`, session.String(), after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r := Record{Session: session}
		if err := rows.Scan(&r.ID, &r.StartTime, &r.ManualID, &r.Robots, &r.Data); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FrameCount returns the number of stored frames for session.
func (s *Store) FrameCount(ctx context.Context, session uuid.UUID) (int, error) {
	var n int
	err := s.QueryRowContext(ctx, `SELECT COUNT(*) FROM frames WHERE session_id = ?`, session.String()).Scan(&n)
	return n, err
}
