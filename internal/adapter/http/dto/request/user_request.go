package request

import "ecotech/internal/domain/entities"

// CreateUserRequest registers a citizen, a company or an administrator. Only
// the fields of the chosen kind are read.
type CreateUserRequest struct {
	Kind        string `json:"kind" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	CPF         string `json:"cpf"`
	CNPJ        string `json:"cnpj"`
	LegalName   string `json:"legal_name"`
	AccessLevel int    `json:"access_level"`
}

func (r CreateUserRequest) ToParams() entities.UserParams {
	return entities.UserParams{
		Name:        r.Name,
		Email:       r.Email,
		CPF:         r.CPF,
		CNPJ:        r.CNPJ,
		LegalName:   r.LegalName,
		AccessLevel: r.AccessLevel,
	}
}

// SetActiveRequest opens or closes a user or a point.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
