package postgres

import (
	"context"
	"time"

	"callbell/internal/domain/entity"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/domain/repository"
	"callbell/internal/infra/persistence/model"
	"callbell/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// callRepository implements the repository.CallRepository interface.
type callRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewCallRepository is the constructor for callRepository.
func NewCallRepository(db *gorm.DB) repository.CallRepository {
	return &callRepository{
		q:   query.Use(db),
		now: time.Now,
	}
}

// CreateCall persists a new open call.
func (repo *callRepository) CreateCall(ctx context.Context, call *entity.Call) error {
	callM := fromCallDomain(call)

	if err := repo.q.TableCallModel.WithContext(ctx).Create(callM); err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("table must be positive")
		}

		return domainerrors.NewTransientError(err, "failed to create call")
	}

	call.CreatedAt = callM.CreatedAt

	return nil
}

// ClaimCall performs the open -> claimed transition as one conditional UPDATE.
// The row count decides the winner; no read happens before the write.
func (repo *callRepository) ClaimCall(ctx context.Context, callID uuid.UUID, claimedBy entity.ClaimedBy) (*entity.ClaimOutcome, error) {
	now := repo.now().UTC()
	tc := repo.q.TableCallModel

	result, err := tc.WithContext(ctx).
		Where(tc.ID.Eq(callID), tc.Status.Eq(string(entity.CallStatusOpen))).
		Updates(map[string]any{
			tc.Status.ColumnName().String():            string(entity.CallStatusClaimed),
			tc.ClaimedByDeviceID.ColumnName().String(): claimedBy.DeviceID,
			tc.ClaimedByName.ColumnName().String():     nullableString(claimedBy.DisplayName),
			tc.ClaimedAt.ColumnName().String():         now,
			tc.UpdatedAt.ColumnName().String():         now,
		})
	if err != nil {
		return nil, domainerrors.NewTransientError(err, "failed to claim call")
	}

	if result.RowsAffected > 0 {
		return &entity.ClaimOutcome{Claimed: true, Status: entity.CallStatusClaimed}, nil
	}

	// Lost the race or the call is gone. Read the status from the primary so a
	// lagging replica cannot report a stale 'open'.
	callM, err := tc.WithContext(ctx).
		WriteDB().
		Select(tc.ID, tc.Status).
		Where(tc.ID.Eq(callID)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCallNotFound
		}

		return nil, domainerrors.NewTransientError(err, "failed to read call status")
	}

	return &entity.ClaimOutcome{Claimed: false, Status: entity.CallStatus(callM.Status)}, nil
}

// --- Mapper Functions ---

// toCallDomain converts a GORM TableCallModel to a domain Call entity.
func toCallDomain(data *model.TableCallModel) *entity.Call {
	if data == nil {
		return nil
	}

	call := &entity.Call{
		ID:          data.ID,
		Zone:        data.Zone,
		TableNumber: data.TableNo,
		Status:      entity.CallStatus(data.Status),
		ClaimedAt:   data.ClaimedAt,
		CreatedAt:   data.CreatedAt,
	}
	if data.ClaimedByDeviceID != nil {
		call.ClaimedBy = &entity.ClaimedBy{DeviceID: *data.ClaimedByDeviceID}
		if data.ClaimedByName != nil {
			call.ClaimedBy.DisplayName = *data.ClaimedByName
		}
	}

	return call
}

// fromCallDomain converts a domain Call entity to a GORM TableCallModel.
func fromCallDomain(data *entity.Call) *model.TableCallModel {
	if data == nil {
		return nil
	}

	callM := &model.TableCallModel{
		ID:        data.ID,
		Zone:      data.Zone,
		TableNo:   data.TableNumber,
		Status:    string(data.Status),
		ClaimedAt: data.ClaimedAt,
		CreatedAt: data.CreatedAt,
	}
	if data.ClaimedBy != nil {
		callM.ClaimedByDeviceID = &data.ClaimedBy.DeviceID
		callM.ClaimedByName = nullableString(data.ClaimedBy.DisplayName)
	}

	return callM
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
