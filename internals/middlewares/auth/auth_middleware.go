package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"mentoring_backend/internals/configs"
	helper "mentoring_backend/internals/helpers"
	"mentoring_backend/internals/logging"
)

type Options struct {
	Mode      string // bearer | static | jwt
	TokenHash string // bcrypt hash, static mode
	JWTSecret string // HS256 secret, jwt mode
}

func OptionsFromConfig(cfg configs.AppConfig) Options {
	return Options{Mode: cfg.AuthMode, TokenHash: cfg.APITokenHash, JWTSecret: cfg.JWTSecret}
}

// AuthMiddleware rejects the request with 401 unless it carries an acceptable bearer
// token. In bearer mode any non-empty token passes; static compares against a bcrypt
// hash; jwt verifies an HS256 signature and expiry.
func AuthMiddleware(opts Options) fiber.Handler {
	verify, err := verifier(opts)
	if err != nil {
		// misconfiguration must not open the API
		logging.L().Error().Err(err).Str("mode", opts.Mode).Msg("❌ auth misconfigured, rejecting all requests")
		verify = func(string) error { return err }
	}

	return func(c *fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			return helper.Unauthorized()
		}
		if err := verify(token); err != nil {
			logging.L().Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
			return helper.Unauthorized()
		}
		c.Locals("auth_token", token)
		return c.Next()
	}
}

func verifier(opts Options) (func(string) error, error) {
	switch strings.ToLower(opts.Mode) {
	case "", configs.AuthModeBearer:
		return func(string) error { return nil }, nil

	case configs.AuthModeStatic:
		if opts.TokenHash == "" {
			return nil, fmt.Errorf("API_TOKEN_HASH is empty")
		}
		hash := []byte(opts.TokenHash)
		return func(token string) error {
			return bcrypt.CompareHashAndPassword(hash, []byte(token))
		}, nil

	case configs.AuthModeJWT:
		if opts.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is empty")
		}
		secret := []byte(opts.JWTSecret)
		return func(token string) error {
			return verifyJWT(token, secret)
		}, nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", opts.Mode)
	}
}
