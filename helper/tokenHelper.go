package helper

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type SignedDetails struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Uid   string `json:"uid"`
	jwt.RegisteredClaims
}

// resetTokens tracks outstanding reset-token IDs so each token is usable once.
var resetTokens = NewTTLStore()

const resetTokenTTL = 15 * time.Minute

func secretKey() []byte {
	return []byte(os.Getenv("SECRET"))
}

// GenerateAccessToken creates the 30-day JWT used for all authenticated calls.
func GenerateAccessToken(email, role, uid string) (string, error) {
	claims := &SignedDetails{
		Email: email,
		Role:  role,
		Uid:   uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken checks a JWT signature and expiry and returns its claims.
func ValidateToken(signedToken string) (*SignedDetails, string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return secretKey(), nil
		},
	)

	if err != nil {
		return nil, fmt.Sprintf("token parsing error: %v", err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, "the token is invalid"
	}

	if claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, "token is expired"
	}

	return claims, ""
}

// GenerateResetToken creates a 15-minute password-reset token. Its jti is kept
// in the TTL store so the token can be redeemed at most once.
func GenerateResetToken(uid string) (string, error) {
	jti := uuid.NewString()

	claims := &SignedDetails{
		Uid: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   "reset",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secretKey())
	if err != nil {
		return "", err
	}

	resetTokens.Put(jti, uid, resetTokenTTL)
	return signed, nil
}

// ConsumeResetToken validates a reset token, burns its jti, and returns the
// user id it was issued for.
func ConsumeResetToken(signedToken string) (string, bool) {
	claims, msg := ValidateToken(signedToken)
	if msg != "" {
		return "", false
	}
	if claims.Subject != "reset" || claims.ID == "" {
		return "", false
	}

	uid, ok := resetTokens.Consume(claims.ID)
	if !ok || uid != claims.Uid {
		return "", false
	}
	return uid, true
}
