package response

import (
	"time"

	"ecotech/internal/domain/entities"
)

type UserResponse struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	CPF               string    `json:"cpf,omitempty"`
	CNPJ              string    `json:"cnpj,omitempty"`
	LegalName         string    `json:"legal_name,omitempty"`
	AccessLevel       int       `json:"access_level,omitempty"`
	Active            bool      `json:"active"`
	ActiveRequests    int       `json:"active_requests"`
	MonthlyDisposedKg float64   `json:"monthly_disposed_kg"`
	CanRequest        bool      `json:"can_request_disposal"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromUser(u *entities.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Kind:              string(u.Kind),
		Name:              u.Name,
		Email:             u.Email,
		CPF:               u.CPF,
		CNPJ:              u.CNPJ,
		LegalName:         u.LegalName,
		AccessLevel:       u.AccessLevel,
		Active:            u.Active(),
		ActiveRequests:    u.ActiveRequests(),
		MonthlyDisposedKg: u.MonthlyDisposedKg(),
		CanRequest:        u.CanRequestDisposal(),
		CreatedAt:         u.CreatedAt,
	}
}

func FromUsers(us []*entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUser(u))
	}
	return out
}

type NotificationsResponse struct {
	UserID        string   `json:"user_id"`
	Notifications []string `json:"notifications"`
}
