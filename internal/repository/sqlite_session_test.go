package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustrack/internal/testutil"
)

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := testutil.NewTestSession(testutil.WithStart(start))
	require.NoError(t, repo.Create(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, fetched.ID)
	assert.True(t, fetched.StartTime.Equal(start))
	assert.Nil(t, fetched.EndTime)
	assert.Empty(t, fetched.Interruptions)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_UpdateClosesSession(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := testutil.NewTestSession(testutil.WithStart(start))
	require.NoError(t, repo.Create(ctx, s))

	end := start.Add(30 * time.Minute)
	s.EndTime = &end
	require.NoError(t, repo.Update(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.EndTime)
	assert.True(t, fetched.EndTime.Equal(end))
}

func TestSessionRepo_GetActive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	closed := testutil.NewTestSession(
		testutil.WithStart(start.Add(-2*time.Hour)),
		testutil.WithEnd(start.Add(-time.Hour)),
	)
	open := testutil.NewTestSession(testutil.WithStart(start))
	require.NoError(t, repo.Create(ctx, closed))
	require.NoError(t, repo.Create(ctx, open))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, open.ID, active.ID)
}

func TestSessionRepo_GetActive_NoneOpen(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	s := testutil.NewTestSession(
		testutil.WithStart(time.Now().Add(-time.Hour)),
		testutil.WithEnd(time.Now()),
	)
	require.NoError(t, repo.Create(ctx, s))

	_, err := repo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListLoadsInterruptions(t *testing.T) {
	db := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(db)
	interruptions := NewSQLiteInterruptionRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := testutil.NewTestSession(
		testutil.WithStart(start),
		testutil.WithEnd(start.Add(time.Hour)),
		testutil.WithInterruption(start.Add(10*time.Minute), start.Add(15*time.Minute)),
	)
	require.NoError(t, sessions.Create(ctx, s))
	for i := range s.Interruptions {
		require.NoError(t, interruptions.Create(ctx, &s.Interruptions[i]))
	}

	list, err := sessions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Interruptions, 1)
	assert.Equal(t, s.Interruptions[0].ID, list[0].Interruptions[0].ID)
}

func TestSessionRepo_ListByDateRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	inside := testutil.NewTestSession(testutil.WithStart(day.Add(9 * time.Hour)))
	before := testutil.NewTestSession(testutil.WithStart(day.Add(-time.Hour)))
	after := testutil.NewTestSession(testutil.WithStart(day.Add(25 * time.Hour)))
	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, after))

	list, err := repo.ListByDateRange(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inside.ID, list[0].ID)
}

func TestSessionRepo_ListByTask(t *testing.T) {
	db := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("write report")
	require.NoError(t, tasks.Create(ctx, task))

	linked := testutil.NewTestSession(testutil.WithTaskID(task.ID))
	loose := testutil.NewTestSession()
	require.NoError(t, sessions.Create(ctx, linked))
	require.NoError(t, sessions.Create(ctx, loose))

	list, err := sessions.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, linked.ID, list[0].ID)
}
