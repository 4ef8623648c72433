package push

import (
	"context"
	"net/http"
	"testing"

	"callbell/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name string
		err  error
		want service.DeliveryOutcome
	}{
		{name: "nil error is sent", err: nil, want: service.DeliverySent},
		{name: "http 404 with provider body", err: &service.ProviderError{StatusCode: http.StatusNotFound, Status: "NOT_FOUND"}, want: service.DeliveryPermanentFailure},
		{name: "bare http 404 is transient", err: &service.ProviderError{StatusCode: http.StatusNotFound}, want: service.DeliveryTransientFailure},
		{name: "bare http 404 with text body is transient", err: &service.ProviderError{StatusCode: http.StatusNotFound, Message: "404 page not found"}, want: service.DeliveryTransientFailure},
		{name: "status NOT_FOUND", err: &service.ProviderError{StatusCode: 400, Status: "NOT_FOUND"}, want: service.DeliveryPermanentFailure},
		{name: "status INVALID_ARGUMENT", err: &service.ProviderError{StatusCode: 400, Status: "INVALID_ARGUMENT"}, want: service.DeliveryPermanentFailure},
		{name: "status UNREGISTERED", err: &service.ProviderError{Status: "UNREGISTERED"}, want: service.DeliveryPermanentFailure},
		{name: "message unregistered", err: &service.ProviderError{StatusCode: 400, Message: "Token is Unregistered"}, want: service.DeliveryPermanentFailure},
		{name: "message not registered", err: &service.ProviderError{Message: "device not registered"}, want: service.DeliveryPermanentFailure},
		{name: "detail unregistered", err: &service.ProviderError{StatusCode: 400, Details: []string{"UNREGISTERED"}}, want: service.DeliveryPermanentFailure},
		{name: "admin sdk code", err: &service.ProviderError{Message: "messaging/registration-token-not-registered"}, want: service.DeliveryPermanentFailure},
		{name: "invalid registration token", err: &service.ProviderError{Message: "messaging/invalid-registration-token"}, want: service.DeliveryPermanentFailure},
		{name: "wrapped provider error", err: errors.Wrap(&service.ProviderError{StatusCode: 404, Status: "NOT_FOUND"}, "send"), want: service.DeliveryPermanentFailure},
		{name: "server error is transient", err: &service.ProviderError{StatusCode: 503, Status: "UNAVAILABLE"}, want: service.DeliveryTransientFailure},
		{name: "quota is transient", err: &service.ProviderError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED"}, want: service.DeliveryTransientFailure},
		{name: "timeout is transient", err: context.DeadlineExceeded, want: service.DeliveryTransientFailure},
		{name: "network error is transient", err: errors.New("connection reset by peer"), want: service.DeliveryTransientFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestClassifier_ExtraSignatures(t *testing.T) {
	classifier := NewClassifier(Signature{
		Name:  "sender_id_mismatch",
		Match: func(perr *service.ProviderError) bool { return perr.Status == "SENDER_ID_MISMATCH" },
	})

	assert.Equal(t, service.DeliveryPermanentFailure,
		classifier.Classify(&service.ProviderError{StatusCode: 403, Status: "SENDER_ID_MISMATCH"}))
	assert.Equal(t, service.DeliveryTransientFailure,
		classifier.Classify(&service.ProviderError{StatusCode: 403, Status: "PERMISSION_DENIED"}))
}
