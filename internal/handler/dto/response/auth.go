package response

import "github.com/IneMentenPXL/FlightsApp/internal/domain/user"

type UserResponse struct {
	ID     int64  `json:"id"`
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Handle: u.Handle,
		Name:   u.DisplayName,
	}
}
