package postgres

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"callbell/internal/domain/entity"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)

func TestCallRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewCallRepository(db)
	ctx := context.Background()

	call := entity.NewCall("patio", 5, testNow)
	require.NoError(t, repo.CreateCall(ctx, call))

	found, err := findCall(t, db, call.ID)
	require.NoError(t, err)
	assert.Equal(t, call.ID, found.ID)
	assert.Equal(t, "patio", found.Zone)
	assert.Equal(t, 5, found.TableNumber)
	assert.Equal(t, entity.CallStatusOpen, found.Status)
	assert.Nil(t, found.ClaimedBy)
	assert.Nil(t, found.ClaimedAt)
}

func TestCallRepository_CreateCall_RejectsNonPositiveTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCallRepository(db)

	err := repo.CreateCall(context.Background(), entity.NewCall("patio", 0, testNow))
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCallRepository_ClaimCall_FirstWinsSecondSeesClaimed(t *testing.T) {
	db := newTestDB(t)
	repo := NewCallRepository(db)
	ctx := context.Background()
	call := seedOpenCall(t, db, "patio", 5)

	first, err := repo.ClaimCall(ctx, call.ID, entity.ClaimedBy{DeviceID: "dev-a", DisplayName: "Ana"})
	require.NoError(t, err)
	assert.True(t, first.Claimed)
	assert.Equal(t, entity.CallStatusClaimed, first.Status)

	second, err := repo.ClaimCall(ctx, call.ID, entity.ClaimedBy{DeviceID: "dev-b", DisplayName: "Ben"})
	require.NoError(t, err)
	assert.False(t, second.Claimed)
	assert.Equal(t, entity.CallStatusClaimed, second.Status)

	stored, err := findCall(t, db, call.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ClaimedBy)
	assert.Equal(t, "dev-a", stored.ClaimedBy.DeviceID)
	assert.Equal(t, "Ana", stored.ClaimedBy.DisplayName)
	assert.NotNil(t, stored.ClaimedAt)
}

func TestCallRepository_ClaimCall_CancelledCallIsNotClaimable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCallRepository(db)
	ctx := context.Background()
	call := seedOpenCall(t, db, "bar", 2)

	require.NoError(t, db.Exec("UPDATE table_calls SET status = ? WHERE id = ?", "cancelled", call.ID).Error)

	outcome, err := repo.ClaimCall(ctx, call.ID, entity.ClaimedBy{DeviceID: "dev-a"})
	require.NoError(t, err)
	assert.False(t, outcome.Claimed)
	assert.Equal(t, entity.CallStatusCancelled, outcome.Status)

	stored, err := findCall(t, db, call.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ClaimedBy)
}

func TestCallRepository_ClaimCall_UnknownCall(t *testing.T) {
	db := newTestDB(t)

	outcome, err := NewCallRepository(db).ClaimCall(context.Background(), uuid.New(), entity.ClaimedBy{DeviceID: "dev-a"})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, repository.ErrCallNotFound)
}

func TestCallRepository_ClaimCall_AtMostOneWinnerUnderConcurrency(t *testing.T) {
	db := newTestDB(t)
	repo := NewCallRepository(db)
	call := seedOpenCall(t, db, "terrace", 9)

	const attempts = 24
	var winners, losers atomic.Int32
	winnerIDs := make([]string, attempts)

	runConcurrently(attempts, func(i int) {
		deviceID := fmt.Sprintf("dev-%02d", i)
		outcome, err := repo.ClaimCall(context.Background(), call.ID, entity.ClaimedBy{DeviceID: deviceID})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, entity.CallStatusClaimed, outcome.Status)
		if outcome.Claimed {
			winners.Add(1)
			winnerIDs[i] = deviceID
		} else {
			losers.Add(1)
		}
	})

	assert.Equal(t, int32(1), winners.Load())
	assert.Equal(t, int32(attempts-1), losers.Load())

	stored, err := findCall(t, db, call.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ClaimedBy)
	assert.Contains(t, winnerIDs, stored.ClaimedBy.DeviceID)
}
