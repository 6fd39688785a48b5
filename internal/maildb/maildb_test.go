package maildb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/mailstat/internal/model"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
CREATE TABLE messages (message_id INTEGER PRIMARY KEY, timestamp INTEGER, sender_id INTEGER);
CREATE TABLE recipients (message_id INTEGER, recipient_id INTEGER);
CREATE TABLE persons (person_id INTEGER PRIMARY KEY, email TEXT, display_name TEXT);`)
	require.NoError(t, err)

	_, err = db.Exec(`
INSERT INTO messages VALUES
	(1, 978307200000, 1),
	(2, 978310800000, 2),
	(3, 0, 3),
	(4, 'garbage', 1);
INSERT INTO recipients VALUES (1, 2), (1, 3), (2, 1), (3, 1), (4, 2);
INSERT INTO persons VALUES
	(1, 'a@x.com', 'John Smith'),
	(2, 'b@x.com', NULL),
	(3, NULL, NULL);`)
	require.NoError(t, err)

	return path
}

func TestNewValidatesPath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)

	_, err = New(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestForEachEventSkipsMalformedRows(t *testing.T) {
	db, err := New(newTestDB(t))
	require.NoError(t, err)
	defer db.Close()

	var events []model.MailEvent
	skipped, err := db.ForEachEvent(context.Background(), func(ev model.MailEvent) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)

	// Message 3 has a zero timestamp, message 4 an unparsable one.
	assert.Equal(t, 2, skipped)
	require.Len(t, events, 3)
	assert.Equal(t, model.MailEvent{Timestamp: 978307200000, SenderID: 1, RecipientID: 2}, events[0])
	assert.Equal(t, model.MailEvent{Timestamp: 978307200000, SenderID: 1, RecipientID: 3}, events[1])
	assert.Equal(t, model.MailEvent{Timestamp: 978310800000, SenderID: 2, RecipientID: 1}, events[2])
}

func TestActorsNullAware(t *testing.T) {
	db, err := New(newTestDB(t))
	require.NoError(t, err)
	defer db.Close()

	rows, skipped, err := db.Actors(context.Background())
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, rows, 3)

	require.NotNil(t, rows[0].Email)
	assert.Equal(t, "a@x.com", *rows[0].Email)
	require.NotNil(t, rows[0].DisplayName)
	assert.Equal(t, "John Smith", *rows[0].DisplayName)

	assert.Nil(t, rows[1].DisplayName)
	assert.Nil(t, rows[2].Email)
	assert.Nil(t, rows[2].DisplayName)
}
