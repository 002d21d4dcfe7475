package folio

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/eringen/folio/views"
)

// Store wraps the SQLite database holding newsletter subscribers, post view
// counts and the now playing track.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets page renders read while a view counter is written; the busy
	// timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS subscribers (
    email TEXT PRIMARY KEY,
    token TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS post_views (
    slug TEXT PRIMARY KEY,
    views INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS now_playing (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    title TEXT NOT NULL,
    artist TEXT NOT NULL,
    url TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`)
	return err
}

// AddSubscriber stores email with a fresh unsubscribe token. Subscribing an
// address twice is not an error; created reports whether a row was added.
func (s *Store) AddSubscriber(email string) (sub Subscriber, created bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := s.db.Exec(`INSERT INTO subscribers (email, token, created_at) VALUES (?, ?, ?) ON CONFLICT(email) DO NOTHING`,
		email, uuid.NewString(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return Subscriber{}, false, fmt.Errorf("add subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Subscriber{}, false, err
	}
	sub, err = s.subscriber(email)
	return sub, n == 1, err
}

func (s *Store) subscriber(email string) (Subscriber, error) {
	var sub Subscriber
	var created string
	err := s.db.QueryRow(`SELECT email, token, created_at FROM subscribers WHERE email = ?`, email).
		Scan(&sub.Email, &sub.Token, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, err
	}
	sub.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return sub, nil
}

// RemoveSubscriber deletes the subscriber owning token. It returns
// ErrNotFound when no subscriber matches.
func (s *Store) RemoveSubscriber(token string) error {
	res, err := s.db.Exec(`DELETE FROM subscribers WHERE token = ?`, token)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSubscribers returns every subscriber, oldest first.
func (s *Store) ListSubscribers() ([]Subscriber, error) {
	rows, err := s.db.Query(`SELECT email, token, created_at FROM subscribers ORDER BY created_at, email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Subscriber
	for rows.Next() {
		var sub Subscriber
		var created string
		if err := rows.Scan(&sub.Email, &sub.Token, &created); err != nil {
			return nil, err
		}
		sub.CreatedAt, _ = time.Parse(time.RFC3339, created)
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// CountSubscribers returns the number of subscribers.
func (s *Store) CountSubscribers() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM subscribers`).Scan(&n)
	return n, err
}

// IncrementViews bumps the view counter for slug and returns the new total.
func (s *Store) IncrementViews(slug string) (int, error) {
	var n int
	err := s.db.QueryRow(`INSERT INTO post_views (slug, views) VALUES (?, 1)
ON CONFLICT(slug) DO UPDATE SET views = views + 1
RETURNING views`, slug).Scan(&n)
	return n, err
}

// Views returns the view count for slug, zero when never viewed.
func (s *Store) Views(slug string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT views FROM post_views WHERE slug = ?`, slug).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

// SetNowPlaying replaces the current track.
func (s *Store) SetNowPlaying(t views.Track) error {
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now()
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO now_playing (id, title, artist, url, updated_at) VALUES (1, ?, ?, ?, ?)`,
		t.Title, t.Artist, t.URL, t.UpdatedAt.UTC().Format(time.RFC3339))
	return err
}

// ClearNowPlaying removes the current track.
func (s *Store) ClearNowPlaying() error {
	_, err := s.db.Exec(`DELETE FROM now_playing`)
	return err
}

// NowPlaying returns the current track, or nil when nothing is playing.
func (s *Store) NowPlaying() (*views.Track, error) {
	var t views.Track
	var updated string
	err := s.db.QueryRow(`SELECT title, artist, url, updated_at FROM now_playing WHERE id = 1`).
		Scan(&t.Title, &t.Artist, &t.URL, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &t, nil
}
