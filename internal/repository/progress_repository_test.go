package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressUpsertKeepsSingleRecord(t *testing.T) {
	repo := NewProgressRepository()

	first := repo.Upsert(1, 10, true)
	assert.True(t, first.Completed)
	assert.NotNil(t, first.CompletedAt)

	second := repo.Upsert(1, 10, true)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Completed)
	assert.NotNil(t, second.CompletedAt)
	require.Len(t, repo.FindByUser(1), 1)

	// Unsetting clears the timestamp on the same record.
	third := repo.Upsert(1, 10, false)
	assert.Equal(t, first.ID, third.ID)
	assert.False(t, third.Completed)
	assert.Nil(t, third.CompletedAt)
	require.Len(t, repo.FindByUser(1), 1)
}

func TestProgressUpsertDistinctPairs(t *testing.T) {
	repo := NewProgressRepository()

	repo.Upsert(1, 10, true)
	repo.Upsert(1, 11, true)
	repo.Upsert(2, 10, true)

	assert.Len(t, repo.FindByUser(1), 2)
	assert.Len(t, repo.FindByUser(2), 1)
}

func TestProgressUpsertSingleRecordUnderConcurrency(t *testing.T) {
	repo := NewProgressRepository()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Upsert(3, 30, true)
		}()
	}
	wg.Wait()

	assert.Len(t, repo.FindByUser(3), 1)
}

func TestProgressFindByUserAndLesson(t *testing.T) {
	repo := NewProgressRepository()

	_, ok := repo.FindByUserAndLesson(1, 10)
	assert.False(t, ok)

	repo.Upsert(1, 10, true)
	progress, ok := repo.FindByUserAndLesson(1, 10)
	require.True(t, ok)
	assert.True(t, progress.Completed)
}
