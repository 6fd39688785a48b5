package maildb

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/mailstat/internal/errors"
	"github.com/sjzar/mailstat/internal/model"
)

const (
	// One row per (message, recipient) pair; a mail with three recipients
	// yields three events.
	eventQuery = `
SELECT m.timestamp, m.sender_id, r.recipient_id
FROM messages m
JOIN recipients r ON r.message_id = m.message_id
ORDER BY m.message_id, r.recipient_id`

	actorQuery = `
SELECT person_id, email, display_name
FROM persons
ORDER BY person_id`
)

// DB is a read-only handle over a mail corpus database.
type DB struct {
	db   *sql.DB
	path string
}

// New opens the corpus database at path in read-only mode.
func New(path string) (*DB, error) {
	if path == "" {
		return nil, errors.InvalidArg("db path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.DBFileNotFound(path)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("open corpus db: %w", err)
	}
	return &DB{db: db, path: path}, nil
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// EventFunc consumes one valid mail event.
type EventFunc func(event model.MailEvent) error

// ForEachEvent streams mail events to fn. Rows that fail to scan or carry
// a non-positive timestamp are skipped and counted so the caller can
// report them; they never abort the stream. An error from fn does abort.
func (d *DB) ForEachEvent(ctx context.Context, fn EventFunc) (skipped int, err error) {
	rows, err := d.db.QueryContext(ctx, eventQuery)
	if err != nil {
		return 0, errors.QueryFailed("events", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev model.MailEvent
		if scanErr := rows.Scan(&ev.Timestamp, &ev.SenderID, &ev.RecipientID); scanErr != nil {
			skipped++
			log.Debug().Msgf("skip event row: %v", scanErr)
			continue
		}
		if ev.Timestamp <= 0 {
			skipped++
			log.Debug().Msgf("skip event row: bad timestamp %d", ev.Timestamp)
			continue
		}
		if err := fn(ev); err != nil {
			return skipped, err
		}
	}
	return skipped, rows.Err()
}

// Actors loads the raw person table in ascending person id order. Rows
// that fail to scan are skipped and counted, same policy as events.
func (d *DB) Actors(ctx context.Context) ([]model.ActorRow, int, error) {
	rows, err := d.db.QueryContext(ctx, actorQuery)
	if err != nil {
		return nil, 0, errors.QueryFailed("persons", err)
	}
	defer rows.Close()

	var (
		out     []model.ActorRow
		skipped int
	)
	for rows.Next() {
		var (
			row   model.ActorRow
			email sql.NullString
			name  sql.NullString
		)
		if scanErr := rows.Scan(&row.RawID, &email, &name); scanErr != nil {
			skipped++
			log.Debug().Msgf("skip person row: %v", scanErr)
			continue
		}
		if email.Valid {
			row.Email = &email.String
		}
		if name.Valid {
			row.DisplayName = &name.String
		}
		out = append(out, row)
	}
	return out, skipped, rows.Err()
}
