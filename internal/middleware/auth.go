package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vsdcgateway/internal/common"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	// GoogleJWKSURL serves the keys that sign Firebase ID tokens.
	GoogleJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

	firebaseIssuerPrefix = "https://securetoken.google.com/"
	bearerPrefix         = "Bearer "
	clockSkew            = time.Minute

	msgNoToken      = "No token provided"
	msgInvalidToken = "Invalid token"
)

var ErrMissingSubject = errors.New("token has no subject")

// FirebaseClaims are the ID token claims the gateway reads.
type FirebaseClaims struct {
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier verifies Firebase ID tokens for one project.
type TokenVerifier struct {
	keyfunc jwt.Keyfunc
	parser  *jwt.Parser
	close   func()
}

// NewTokenVerifier fetches the signing keys from jwksURL and keeps them refreshed in the
// background until Close.
func NewTokenVerifier(projectID, jwksURL string, logger *zap.Logger) (*TokenVerifier, error) {
	if jwksURL == "" {
		jwksURL = GoogleJWKSURL
	}
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Error("failed to refresh JWKS", zap.String("url", jwksURL), zap.Error(err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load JWKS from %s: %w", jwksURL, err)
	}
	v := NewTokenVerifierWithKeyfunc(projectID, jwks.Keyfunc)
	v.close = jwks.EndBackground
	return v, nil
}

// NewTokenVerifierWithKeyfunc builds a verifier over an existing key source.
func NewTokenVerifierWithKeyfunc(projectID string, kf jwt.Keyfunc) *TokenVerifier {
	return &TokenVerifier{
		keyfunc: kf,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(firebaseIssuerPrefix+projectID),
			jwt.WithAudience(projectID),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
		close: func() {},
	}
}

// Verify parses and validates an ID token.
func (v *TokenVerifier) Verify(raw string) (*FirebaseClaims, error) {
	claims := &FirebaseClaims{}
	if _, err := v.parser.ParseWithClaims(raw, claims, v.keyfunc); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

func (v *TokenVerifier) Close() {
	v.close()
}

// Auth requires a valid bearer ID token and stores the verified uid and email in the
// request context.
func Auth(verifier *TokenVerifier, logger *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:" + bearerPrefix,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return verifier.Verify(auth)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get("user").(*FirebaseClaims)
			if !ok {
				return
			}
			ctx := common.WithUser(c.Request().Context(), claims.Subject, claims.Email)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
				return common.SendUnauthorized(c, msgNoToken)
			}
			logger.Warn("token verification failed", zap.String("path", c.Path()), zap.Error(err))
			return common.SendUnauthorized(c, msgInvalidToken)
		},
	})
}
