package usuario

// LoginDTO é o payload de autenticação.
type LoginDTO struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// CriarUsuarioDTO é o payload de cadastro. Senha em branco gera
// uma senha temporária devolvida na resposta.
type CriarUsuarioDTO struct {
	Nome  string `json:"nome" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"omitempty,min=8"`
	Role  string `json:"role" validate:"omitempty,oneof=admin operador"`
}

// AtualizarUsuarioDTO é o payload de atualização parcial.
type AtualizarUsuarioDTO struct {
	Nome  *string `json:"nome" validate:"omitempty,min=3"`
	Email *string `json:"email" validate:"omitempty,email"`
	Senha *string `json:"senha" validate:"omitempty,min=8"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin operador"`
	Ativo *bool   `json:"ativo"`
}
