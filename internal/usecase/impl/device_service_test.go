package impl

import (
	"context"
	"strings"
	"testing"

	"callbell/internal/domain/entity"
	domainerrors "callbell/internal/domain/errors"
	mockRepo "callbell/internal/mocks/repository"
	"callbell/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		DeviceID:     " device-123 ",
		DisplayName:  "  Ana  ",
		PushEndpoint: "token-abc",
		Platform:     "iOS",
	}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, &entity.DeviceRegistration{
			DeviceID:     "device-123",
			DisplayName:  "Ana",
			PushEndpoint: "token-abc",
			Platform:     "ios",
		}).
		Return(&entity.StaffDevice{DeviceID: "device-123", PushEndpoint: "token-abc", IsActive: true}, nil)

	device, err := fx.service.RegisterDevice(ctx, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "device-123", device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_DefaultsPlatformAndTruncatesName(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	longName := strings.Repeat("n", 120)

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(reg *entity.DeviceRegistration) bool {
			return reg.Platform == entity.DefaultPlatform && len([]rune(reg.DisplayName)) == entity.MaxDisplayNameLength
		})).
		Return(&entity.StaffDevice{DeviceID: "device-1"}, nil)

	_, err := fx.service.RegisterDevice(ctx, &usecase.DeviceInfo{
		DeviceID:     "device-1",
		DisplayName:  longName,
		PushEndpoint: "token",
	})
	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{name: "missing device id", info: &usecase.DeviceInfo{PushEndpoint: "token"}},
		{name: "blank device id", info: &usecase.DeviceInfo{DeviceID: "   ", PushEndpoint: "token"}},
		{name: "device id too long", info: &usecase.DeviceInfo{DeviceID: strings.Repeat("d", entity.MaxDeviceIDLength+1), PushEndpoint: "token"}},
		{name: "missing token", info: &usecase.DeviceInfo{DeviceID: "device-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			device, err := fx.service.RegisterDevice(context.Background(), tt.info)
			require.Error(t, err)
			assert.Nil(t, device)
			assert.True(t, domainerrors.IsValidation(err))
		})
	}
}

func TestDeviceService_RegisterDevice_StoreError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	storeErr := domainerrors.NewTransientError(errors.New("connection refused"), "upsert device")

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.Anything).
		Return(nil, storeErr)

	device, err := fx.service.RegisterDevice(ctx, &usecase.DeviceInfo{DeviceID: "device-1", PushEndpoint: "token"})
	require.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, domainerrors.IsTransient(err))
}
