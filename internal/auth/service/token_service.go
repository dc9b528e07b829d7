package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/auth/service TokenGenerator

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
)

type TokenGenerator interface {
	GeneratePair(userID string) (accessToken, refreshToken string, err error)
	VerifyAccessToken(tokenString string) (string, error)
	VerifyRefreshToken(tokenString string) (string, error)
	Fingerprint(refreshToken string) (string, error)
	CompareFingerprint(fingerprint, refreshToken string) bool
}

// TokenService mints and verifies the access/refresh token pair. The two
// token types are signed with distinct secrets so possession of one does not
// allow forging the other.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	FingerprintCost    int
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes, fingerprintCost int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
		FingerprintCost:    fingerprintCost,
	}
}

func (ts *TokenService) GeneratePair(userID string) (string, string, error) {
	now := time.Now()

	accessToken, err := ts.sign(userID, ts.AccessTokenSecret, now.Add(ts.AccessTokenExpiry), now)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.sign(userID, ts.RefreshTokenSecret, now.Add(ts.RefreshTokenExpiry), now)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (ts *TokenService) sign(userID, secret string, expiresAt, issuedAt time.Time) (string, error) {
	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccessToken validates signature and expiry against the access secret
// and returns the embedded user id. All failure modes collapse into
// ErrInvalidToken.
func (ts *TokenService) VerifyAccessToken(tokenString string) (string, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

// VerifyRefreshToken does the same against the refresh secret.
func (ts *TokenService) VerifyRefreshToken(tokenString string) (string, error) {
	return ts.verify(tokenString, ts.RefreshTokenSecret)
}

func (ts *TokenService) verify(tokenString, secret string) (string, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	return claims.UserID, nil
}

// Fingerprint computes the slow one-way hash stored in place of the refresh
// token. bcrypt caps input at 72 bytes and JWTs are longer, so the token is
// digested first.
func (ts *TokenService) Fingerprint(refreshToken string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(refreshToken), ts.FingerprintCost)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint refresh token: %w", err)
	}

	return string(hash), nil
}

func (ts *TokenService) CompareFingerprint(fingerprint, refreshToken string) bool {
	return bcrypt.CompareHashAndPassword([]byte(fingerprint), digest(refreshToken)) == nil
}

func digest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	encoded := base64.StdEncoding.EncodeToString(sum[:])

	return []byte(encoded)
}
