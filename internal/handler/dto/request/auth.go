package request

import (
	"github.com/IneMentenPXL/FlightsApp/internal/domain/user"
)

type LoginRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Handle, r.Password)
}
