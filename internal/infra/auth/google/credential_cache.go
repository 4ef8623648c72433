// Package google obtains OAuth access tokens for Google APIs from a service account.
package google

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"callbell/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// DefaultTokenURL is Google's OAuth 2.0 token endpoint.
	DefaultTokenURL = "https://oauth2.googleapis.com/token"
	// MessagingScope grants access to the FCM HTTP v1 API.
	MessagingScope = "https://www.googleapis.com/auth/firebase.messaging"

	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionLifetime  = time.Hour
	defaultExpiresIn   = 3600
	refreshMargin      = 60 * time.Second
	exchangeTimeout    = 15 * time.Second
)

// ServiceAccount holds the fields of a Google service account key file that are needed here.
type ServiceAccount struct {
	ProjectID    string `json:"project_id"`
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

// LoadServiceAccount reads a service account key file.
func LoadServiceAccount(path string) (*ServiceAccount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read service account %s", path)
	}

	return ParseServiceAccount(raw)
}

// ParseServiceAccount decodes a service account key from JSON.
func ParseServiceAccount(raw []byte) (*ServiceAccount, error) {
	var account ServiceAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, errors.Wrap(err, "decode service account")
	}
	if account.ClientEmail == "" || account.PrivateKey == "" {
		return nil, errors.New("service account requires client_email and private_key")
	}

	return &account, nil
}

// CredentialCache caches an access token and refreshes it shortly before expiry.
type CredentialCache struct {
	email      string
	keyID      string
	key        *rsa.PrivateKey
	scope      string
	tokenURL   string
	httpClient *http.Client
	now        func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// Option customizes a CredentialCache.
type Option func(*CredentialCache)

// WithTokenURL overrides the token endpoint (emulators and tests).
func WithTokenURL(tokenURL string) Option {
	return func(c *CredentialCache) {
		if tokenURL != "" {
			c.tokenURL = tokenURL
		}
	}
}

// WithHTTPClient overrides the HTTP client used for the exchange.
func WithHTTPClient(client *http.Client) Option {
	return func(c *CredentialCache) {
		c.httpClient = client
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *CredentialCache) {
		c.now = now
	}
}

// NewCredentialCache creates a cache for the messaging scope. The private key may be
// PKCS#8 or PKCS#1 PEM.
func NewCredentialCache(account *ServiceAccount, opts ...Option) (*CredentialCache, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(account.PrivateKey))
	if err != nil {
		return nil, errors.Wrap(err, "parse service account private key")
	}

	cache := &CredentialCache{
		email:      account.ClientEmail,
		keyID:      account.PrivateKeyID,
		key:        key,
		scope:      MessagingScope,
		tokenURL:   DefaultTokenURL,
		httpClient: &http.Client{Timeout: exchangeTimeout},
		now:        time.Now,
	}
	if account.TokenURI != "" {
		cache.tokenURL = account.TokenURI
	}
	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

var _ service.AccessTokenSource = (*CredentialCache)(nil)

// AccessToken returns the cached token while more than a minute of validity remains,
// otherwise performs one exchange shared by all concurrent callers.
func (c *CredentialCache) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.token != "" && now.Before(c.expiresAt.Add(-refreshMargin)) {
		return c.token, nil
	}

	assertion, err := c.signAssertion(now)
	if err != nil {
		return "", err
	}

	token, expiresIn, err := c.exchange(ctx, assertion)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = now.Add(time.Duration(expiresIn) * time.Second)

	return c.token, nil
}

func (c *CredentialCache) signAssertion(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":   c.email,
		"scope": c.scope,
		"aud":   c.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if c.keyID != "" {
		token.Header["kid"] = c.keyID
	}

	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", errors.Wrap(err, "sign token assertion")
	}

	return signed, nil
}

func (c *CredentialCache) exchange(ctx context.Context, assertion string) (string, int, error) {
	data := url.Values{}
	data.Set("grant_type", jwtBearerGrantType)
	data.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to exchange token assertion")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return "", 0, errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", 0, errors.Wrap(err, "failed to decode token response")
	}
	if tokenResponse.AccessToken == "" {
		return "", 0, errors.New("token response carried no access_token")
	}
	if tokenResponse.ExpiresIn <= 0 {
		tokenResponse.ExpiresIn = defaultExpiresIn
	}

	return tokenResponse.AccessToken, tokenResponse.ExpiresIn, nil
}
