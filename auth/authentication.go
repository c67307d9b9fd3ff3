package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/megacare-dev/mega-care-api/config"
	"github.com/megacare-dev/mega-care-api/line"
)

var (
	ErrUnauthenticated          = fmt.Errorf("bearer token is invalid")
	AuthContextKey              = AuthKey("auth")
	AuthorizationHeaderKey      = "Authorization"
	bearerPrefix                = "Bearer "
	DefaultCacheSize            = 10000           // Cache up to 10000 tokens
	DefaultCacheEntryExpiration = 5 * time.Minute // Cache tokens for 5 minutes
)

type AuthKey string

type Auth struct {
	SubjectId string `json:"subjectId"`
	Provider  string `json:"provider"`
}

type Authenticator interface {
	ValidateAndSetAuthData(token string, ec echo.Context) (bool, error)
}

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
}

func NewAuthMiddleware(authenticator Authenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Allow skipping authentication for certain routes (e.g. readiness probe)
			if opts.Skipper != nil {
				if opts.Skipper(c) {
					return next(c)
				}
			}

			header := c.Request().Header.Get(AuthorizationHeaderKey)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token is missing")
			}
			token := strings.TrimPrefix(header, bearerPrefix)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token is missing")
			}

			valid, err := authenticator.ValidateAndSetAuthData(token, c)
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "bearer token is invalid",
					Internal: err,
				}
			} else if valid {
				return next(c)
			}
			return echo.ErrUnauthorized
		}
	}
}

// NewAuthenticator returns the authenticator selected by the service
// configuration, wrapped in a token cache.
func NewAuthenticator(cfg *config.Config, verifier *TokenVerifier, lineClient line.Client) (Authenticator, error) {
	var delegate Authenticator
	switch cfg.AuthMode {
	case "line":
		delegate = NewLineAuthenticator(cfg.LineChannelId, lineClient)
	default:
		delegate = NewTokenAuthenticator(verifier)
	}
	return NewCachingAuthenticator(
		DefaultCacheSize,
		DefaultCacheEntryExpiration,
		delegate,
		func(a *Auth) bool { return a != nil },
	)
}

// TokenAuthenticator verifies tokens issued by this service locally.
type TokenAuthenticator struct {
	verifier *TokenVerifier
}

var _ Authenticator = &TokenAuthenticator{}

func NewTokenAuthenticator(verifier *TokenVerifier) Authenticator {
	return &TokenAuthenticator{verifier: verifier}
}

func (t *TokenAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	claims, err := t.verifier.Verify(token)
	if err != nil {
		return false, err
	}

	SetAuthData(ec, &Auth{
		SubjectId: claims.Subject,
		Provider:  claims.Provider,
	})
	return true, nil
}

// LineAuthenticator forwards the credential to the LINE verify endpoint and
// resolves the subject via the profile endpoint.
type LineAuthenticator struct {
	channelId string
	line      line.Client
}

var _ Authenticator = &LineAuthenticator{}

func NewLineAuthenticator(channelId string, lineClient line.Client) Authenticator {
	return &LineAuthenticator{channelId: channelId, line: lineClient}
}

func (l *LineAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	ctx := ec.Request().Context()
	verification, err := l.line.VerifyAccessToken(ctx, token)
	if err != nil {
		return false, err
	}
	if verification.ClientId != l.channelId {
		return false, fmt.Errorf("%w: token was issued for a different channel", ErrUnauthenticated)
	}

	profile, err := l.line.GetProfile(ctx, token)
	if err != nil {
		return false, err
	}
	if profile.UserId == "" {
		return false, ErrUnauthenticated
	}

	SetAuthData(ec, &Auth{
		SubjectId: profile.UserId,
		Provider:  "line",
	})
	return true, nil
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}

type CacheEntry struct {
	token  string
	auth   *Auth
	expiry time.Time
}

func (c CacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

type CachingAuthenticator struct {
	delegate    Authenticator
	expiration  time.Duration
	lru         *simplelru.LRU
	mu          *sync.Mutex
	shouldCache func(*Auth) bool
}

var _ Authenticator = &CachingAuthenticator{}

func NewCachingAuthenticator(size int, expiration time.Duration, delegate Authenticator, shouldCache func(*Auth) bool) (Authenticator, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingAuthenticator{
		delegate:    delegate,
		expiration:  expiration,
		lru:         lru,
		mu:          &sync.Mutex{},
		shouldCache: shouldCache,
	}, nil
}

func (c *CachingAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	entry := c.getCachedEntry(token)
	if entry != nil {
		SetAuthData(ec, entry.auth)
		return true, nil
	}

	res, err := c.delegate.ValidateAndSetAuthData(token, ec)
	auth := GetAuthData(ec.Request().Context())

	if c.shouldCache(auth) {
		entry := CacheEntry{
			token:  token,
			auth:   auth,
			expiry: time.Now().Add(c.expiration),
		}
		c.setCacheEntry(entry)
	}

	return res, err
}

func (c *CachingAuthenticator) getCachedEntry(token string) *CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(token); ok {
		entry := e.(CacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(token)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingAuthenticator) setCacheEntry(entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(entry.token, entry)
}
