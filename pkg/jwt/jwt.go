package jwt

import (
	"errors"
	"time"

	"odontoflash-api/config"
	"odontoflash-api/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the session claims set: user id, email and user type, plus a
// token id used for the Redis revocation list.
type Claims struct {
	UserID   uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	UserType entity.UserType `json:"userType"`
	TokenID  string          `json:"tokenId"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// Generate signs a session token for the user. Returns the signed token and
// its token id.
func (s *JWTService) Generate(user *entity.User) (string, string, error) {
	tokenID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		TokenID:  tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

// Validate verifies signature and expiry and returns the decoded claims.
// It never panics past this boundary; any failure comes back as an error.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) Expiry() time.Duration {
	return s.config.Expiry
}

// SessionKey is the Redis key under which an issued token is marked valid.
// Deleting it revokes the session before the JWT itself expires.
func SessionKey(userID uuid.UUID, tokenID string) string {
	return "session:" + userID.String() + ":" + tokenID
}
