package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	CPF      string `json:"cpf" example:"529.982.247-25"`
	Address  string `json:"address"`
	Phone    string `json:"phone" example:"11999999999"`
	Email    string `json:"email" example:"maria@example.com"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type TokenResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

type UserResponseDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
