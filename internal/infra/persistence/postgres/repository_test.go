package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"callbell/internal/domain/entity"
	"callbell/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory SQLite database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db.Session(&gorm.Session{SkipDefaultTransaction: true})
}

func seedOpenCall(t *testing.T, db *gorm.DB, zone string, table int) *entity.Call {
	t.Helper()

	call := entity.NewCall(zone, table, testNow)
	require.NoError(t, NewCallRepository(db).CreateCall(context.Background(), call))

	return call
}

// findCall reads a call back through the generated query API.
func findCall(t *testing.T, db *gorm.DB, callID uuid.UUID) (*entity.Call, error) {
	t.Helper()

	tc := query.Use(db).TableCallModel

	callM, err := tc.WithContext(context.Background()).Where(tc.ID.Eq(callID)).Take()
	if err != nil {
		return nil, err
	}

	return toCallDomain(callM), nil
}

func seedDevice(t *testing.T, db *gorm.DB, deviceID, endpoint string, active bool) {
	t.Helper()

	_, err := NewDeviceRepository(db).UpsertDevice(context.Background(), &entity.DeviceRegistration{
		DeviceID:     deviceID,
		PushEndpoint: endpoint,
		Platform:     entity.DefaultPlatform,
	})
	require.NoError(t, err)

	if !active {
		sd := query.Use(db).StaffDeviceModel
		_, err := sd.WithContext(context.Background()).
			Where(sd.DeviceID.Eq(deviceID)).
			Update(sd.IsActive, false)
		require.NoError(t, err)
	}
}

// runConcurrently starts n goroutines at once and waits for all of them.
func runConcurrently(n int, fn func(i int)) {
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			fn(i)
		}(i)
	}

	close(start)
	wg.Wait()
}
