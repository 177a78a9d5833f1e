package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"kirim/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// Principal is the authenticated caller, decoded from the access token.
// Identity is issued elsewhere; this service only verifies and trusts it.
type Principal struct {
	UserID   kernel.UUID
	TenantID *kernel.UUID
	DriverID *kernel.UUID
	Email    string
	Role     string
}

// IsTenantStaff reports whether the principal acts for a tenant.
func (p Principal) IsTenantStaff() bool {
	return p.TenantID != nil
}

// IsDriver reports whether the principal is a driver.
func (p Principal) IsDriver() bool {
	return p.DriverID != nil
}

// accessClaims is the JWT payload shape emitted by the identity provider.
type accessClaims struct {
	TenantID string `json:"tenantId,omitempty"`
	DriverID string `json:"driverId,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies bearer tokens and attaches the Principal to the
// request context.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an Authenticator with the shared HMAC secret.
func NewAuthenticator(secret []byte) *Authenticator {
	return &Authenticator{secret: secret}
}

// Middleware requires a valid bearer token and rejects requests without one.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := a.authenticate(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing access token",
				})
			}
			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// Optional attaches the Principal when a valid token is present but lets
// anonymous requests through. Used on intake surfaces shared by customers
// and tenant staff.
func (a *Authenticator) Optional() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(ctx)
			}

			principal, err := a.authenticate(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid access token",
				})
			}
			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func (a *Authenticator) authenticate(ctx echo.Context) (Principal, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return Principal{}, fmt.Errorf("authorization header is not a bearer token")
	}

	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return a.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !parsed.Valid {
		return Principal{}, fmt.Errorf("token is not valid")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("token subject: %w", err)
	}

	principal := Principal{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}

	if claims.TenantID != "" {
		tenantID, convErr := kernel.UUIDFromString(claims.TenantID)
		if convErr != nil {
			return Principal{}, fmt.Errorf("token tenantId: %w", convErr)
		}
		principal.TenantID = &tenantID
	}

	if claims.DriverID != "" {
		driverID, convErr := kernel.UUIDFromString(claims.DriverID)
		if convErr != nil {
			return Principal{}, fmt.Errorf("token driverId: %w", convErr)
		}
		principal.DriverID = &driverID
	}

	return principal, nil
}

// principalFrom returns the authenticated principal, if any.
func principalFrom(ctx echo.Context) (Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	return principal, ok
}

// limitByIP enforces a fixed-window request limit per client IP through the
// shared counter store, so the window holds across instances. Counter
// failures let the request through: losing rate limiting beats dropping
// traffic.
func (s *Server) limitByIP(cfg RateLimitConfig) echo.MiddlewareFunc {
	window := time.Duration(cfg.Window) * time.Second

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", ctx.Path(), ctx.RealIP())

			count, err := s.counter.IncrWithTTL(ctx.Request().Context(), key, window)
			if err != nil {
				s.logger.Warn().Err(err).Msg("rate limit counter unavailable")
				return next(ctx)
			}

			if count > cfg.Requests {
				return ctx.JSON(http.StatusTooManyRequests, ErrorResponse{
					Code:    http.StatusTooManyRequests,
					Message: "rate limit exceeded",
				})
			}
			return next(ctx)
		}
	}
}
