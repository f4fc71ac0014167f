package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config holds the token signing settings. It is read once at startup and
// never mutated; the TokenService copies what it needs at construction.
type Config struct {
	SecretKey     string
	ExpiryMinutes int
	Issuer        string
	Audience      string
}

func (c Config) validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("auth: signing secret is not configured")
	}
	if c.ExpiryMinutes <= 0 {
		return errors.New("auth: token expiry must be a positive number of minutes")
	}
	return nil
}

// Claims is the strongly typed claim set carried by issued tokens. The wire
// format is the standard three-segment JWT; this struct only exists in
// process.
type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as the numeric user identifier.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// TokenService issues and verifies HS256 bearer tokens. Stateless: the
// signing secret and lifetime are fixed at construction and shared read-only
// across requests.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	issuer   string
	audience string
	now      func() time.Time
}

// NewTokenService validates the configuration up front. A missing secret or
// unusable expiry is a startup fault: the service refuses to construct
// rather than issue unsigned or weakly signed tokens later.
func NewTokenService(cfg Config) (*TokenService, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TokenService{
		secret:   []byte(cfg.SecretKey),
		lifetime: time.Duration(cfg.ExpiryMinutes) * time.Minute,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		now:      time.Now,
	}, nil
}

// Issue signs a token for the given user. Claims are immutable once issued;
// later changes to the identity record do not alter outstanding tokens.
func (s *TokenService) Issue(userID int64, email string, role Role) (string, time.Time, error) {
	if userID <= 0 {
		return "", time.Time{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.lifetime)
	claims := Claims{
		Email: strings.TrimSpace(strings.ToLower(email)),
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify recomputes the signature under the configured secret and checks
// expiry, issuer and audience. Expiry is strict: a token checked at or after
// its expiry instant is rejected.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if err := s.validateClaims(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *TokenService) validateClaims(claims *Claims) error {
	if claims.Issuer != s.issuer {
		return ErrInvalidToken
	}
	if !containsAudience(claims.Audience, s.audience) {
		return ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return ErrInvalidToken
	}
	if !claims.ExpiresAt.Time.After(claims.IssuedAt.Time) {
		return ErrInvalidToken
	}
	if !s.now().Before(claims.ExpiresAt.Time) {
		return ErrTokenExpired
	}
	return nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	if want == "" {
		return len(aud) == 0 || containsString(aud, "")
	}
	return containsString(aud, want)
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
