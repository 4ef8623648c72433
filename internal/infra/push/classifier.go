package push

import (
	"net/http"
	"strings"

	"callbell/internal/domain/service"
	"callbell/internal/errors"
)

// Signature is one pattern that marks an endpoint as permanently dead.
type Signature struct {
	Name  string
	Match func(perr *service.ProviderError) bool
}

// notFoundFromProvider matches a 404 that carries a decoded provider error body. A bare
// 404 may come from a proxy or a wrong URL and says nothing about the token.
func notFoundFromProvider(perr *service.ProviderError) bool {
	return perr.StatusCode == http.StatusNotFound && perr.Status != ""
}

func statusIs(status string) func(*service.ProviderError) bool {
	return func(perr *service.ProviderError) bool {
		return strings.EqualFold(perr.Status, status)
	}
}

func mentions(fragment string) func(*service.ProviderError) bool {
	return func(perr *service.ProviderError) bool {
		if strings.Contains(strings.ToLower(perr.Message), fragment) {
			return true
		}
		for _, detail := range perr.Details {
			if strings.Contains(strings.ToLower(detail), fragment) {
				return true
			}
		}

		return false
	}
}

// DefaultSignatures lists the provider rejections that mean the token will never work again.
//
//nolint:gochecknoglobals
var DefaultSignatures = []Signature{
	{Name: "http_404", Match: notFoundFromProvider},
	{Name: "status_not_found", Match: statusIs("NOT_FOUND")},
	{Name: "status_invalid_argument", Match: statusIs("INVALID_ARGUMENT")},
	{Name: "status_unregistered", Match: statusIs("UNREGISTERED")},
	{Name: "unregistered", Match: mentions("unregistered")},
	{Name: "not_registered", Match: mentions("not registered")},
	{Name: "registration_token_not_registered", Match: mentions("registration-token-not-registered")},
	{Name: "invalid_registration_token", Match: mentions("invalid-registration-token")},
}

type classifier struct {
	signatures []Signature
}

// NewClassifier returns a FailureClassifier over DefaultSignatures plus any extra ones.
func NewClassifier(extra ...Signature) service.FailureClassifier {
	signatures := make([]Signature, 0, len(DefaultSignatures)+len(extra))
	signatures = append(signatures, DefaultSignatures...)
	signatures = append(signatures, extra...)

	return &classifier{signatures: signatures}
}

// Classify maps err onto a delivery outcome. Errors that are not provider rejections,
// such as timeouts and network failures, are transient.
func (c *classifier) Classify(err error) service.DeliveryOutcome {
	if err == nil {
		return service.DeliverySent
	}

	var perr *service.ProviderError
	if !errors.As(err, &perr) {
		return service.DeliveryTransientFailure
	}

	for _, sig := range c.signatures {
		if sig.Match(perr) {
			return service.DeliveryPermanentFailure
		}
	}

	return service.DeliveryTransientFailure
}
