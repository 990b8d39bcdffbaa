package usecase

import (
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/jwt"
)

// TokenValidator is what the auth middleware needs: token in, identity out.
type TokenValidator interface {
	ValidateToken(tokenString string) (userID int64, handle string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(tokenString string) (int64, string, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", ErrTokenValidation
	}
	return claims.UserID, claims.Handle, nil
}
