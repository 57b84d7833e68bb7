// Package auth issues and validates station access tokens. A token is
// minted at enrolment and must accompany every subsequent submission.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/urna/internal/common"
)

// Claims carries the registered claims plus the station identity.
type Claims struct {
	jwt.RegisteredClaims
	StationID string
}

// GenerateToken mints an HS256 token for the station.
func GenerateToken(stationID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		StationID: stationID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetStationIDFromToken validates the token and returns the station it was
// issued to.
func GetStationIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.StationID, nil
}
