package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
)

// Token verification failures, distinguished for internal logging only.
// Clients always receive the same generic 401.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	jwt.RegisteredClaims
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewJWTManager(secretKey string, duration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: duration,
	}
}

// GenerateToken issues a signed HS256 token carrying the user's id, email and
// role. Validity is time-based only; there is no revocation.
func (j *JWTManager) GenerateToken(user domain.AuthUser) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenDuration)),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken checks signature and expiry and returns the embedded identity.
// Expired tokens report ErrTokenExpired; everything else (bad signature,
// malformed structure, wrong algorithm) reports ErrTokenInvalid.
func (j *JWTManager) VerifyToken(tokenStr string) (*domain.AuthUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}

	return &domain.AuthUser{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
