package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated principal recovered from a bearer token.
type Claims struct {
	UserID int64
	Tipo   string
}

// JWTService issues and validates signed access tokens.
type JWTService interface {
	GenerateAccessToken(userID int64, tipo string) (string, error)
	ValidateToken(token string) (*Claims, error)
}

type tokenClaims struct {
	Tipo string `json:"tipo"`
	jwt.RegisteredClaims
}

type jwtService struct {
	secret   []byte
	ttl      time.Duration
	timeFunc func() time.Time
}

// NewJWTService creates an HS256 token service. The secret is fixed for the
// process lifetime; tokens expire exactly ttl after issuance.
func NewJWTService(secret string, ttl time.Duration) JWTService {
	return &jwtService{
		secret:   []byte(secret),
		ttl:      ttl,
		timeFunc: time.Now,
	}
}

func (s *jwtService) GenerateAccessToken(userID int64, tipo string) (string, error) {
	now := s.timeFunc()
	claims := tokenClaims{
		Tipo: tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeFunc),
		jwt.WithExpirationRequired(),
	)

	var claims tokenClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	return &Claims{UserID: userID, Tipo: claims.Tipo}, nil
}
