package model

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type RegisterRequest struct {
	FullName string `json:"nome_completo" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Senha    string `json:"senha" binding:"required,min=6"`
	Type     string `json:"tipo" binding:"required,oneof=PACIENTE PROFISSIONAL ADMIN"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
