package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var version int
	err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestCreateAndListSolves(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create(Solve{
		Facelets:   "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB",
		Scramble:   "R U R' U'",
		Solution:   "U R U' R'",
		MoveCount:  4,
		Phase1Len:  2,
		Nodes:      1234,
		DurationMs: 7,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	solves, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, solves, 1)
	assert.Equal(t, id, solves[0].SolveID)
	assert.Equal(t, "U R U' R'", solves[0].Solution)
	assert.Equal(t, 4, solves[0].MoveCount)
	assert.False(t, solves[0].CreatedAt.IsZero())
}

func TestGetSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create(Solve{Facelets: "x", Solution: "R", MoveCount: 1})
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "R", s.Solution)

	_, err = repo.Get("no-such-id")
	assert.Error(t, err)
}
