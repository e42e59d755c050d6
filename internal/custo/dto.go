package custo

// CriarCustoDTO é o payload de criação de custo.
type CriarCustoDTO struct {
	FreteID         uint     `json:"freteId" validate:"required,gt=0"`
	Tipo            string   `json:"tipo" validate:"required,oneof=combustivel manutencao pedagio outros"`
	Descricao       string   `json:"descricao" validate:"required,min=3"`
	Valor           float64  `json:"valor" validate:"required,gt=0"`
	Data            string   `json:"data" validate:"required,datetime=2006-01-02"`
	Comprovante     *bool    `json:"comprovante"`
	Observacoes     string   `json:"observacoes"`
	Motorista       string   `json:"motorista"`
	Caminhao        string   `json:"caminhao"`
	Rota            string   `json:"rota"`
	Litros          *float64 `json:"litros" validate:"omitempty,gt=0"`
	TipoCombustivel string   `json:"tipoCombustivel" validate:"omitempty,oneof=gasolina diesel etanol gnv"`
}

// AtualizarCustoDTO é o payload de atualização parcial.
type AtualizarCustoDTO struct {
	FreteID         *uint    `json:"freteId" validate:"omitempty,gt=0"`
	Tipo            *string  `json:"tipo" validate:"omitempty,oneof=combustivel manutencao pedagio outros"`
	Descricao       *string  `json:"descricao" validate:"omitempty,min=3"`
	Valor           *float64 `json:"valor" validate:"omitempty,gt=0"`
	Data            *string  `json:"data" validate:"omitempty,datetime=2006-01-02"`
	Comprovante     *bool    `json:"comprovante"`
	Observacoes     *string  `json:"observacoes"`
	Motorista       *string  `json:"motorista"`
	Caminhao        *string  `json:"caminhao"`
	Rota            *string  `json:"rota"`
	Litros          *float64 `json:"litros" validate:"omitempty,gt=0"`
	TipoCombustivel *string  `json:"tipoCombustivel" validate:"omitempty,oneof=gasolina diesel etanol gnv"`
}
