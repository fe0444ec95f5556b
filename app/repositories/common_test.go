package repositories

import (
	"testing"
	"time"

	"blogfront/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testPost(id int, title, category string, date time.Time) *models.Post {
	return &models.Post{
		ID:       id,
		Title:    title,
		Body:     "Body of " + title,
		Date:     date,
		Author:   "Author",
		Category: category,
	}
}
