package pagamento

// CriarPagamentoDTO é o payload de criação de pagamento.
type CriarPagamentoDTO struct {
	MotoristaID      uint    `json:"motoristaId" validate:"required,gt=0"`
	MotoristaNome    string  `json:"motoristaNome" validate:"required,min=3"`
	PeriodoFretes    string  `json:"periodoFretes" validate:"required,min=3"`
	QuantidadeFretes int     `json:"quantidadeFretes" validate:"required,gt=0"`
	FretesIncluidos  string  `json:"fretesIncluidos"`
	TotalToneladas   float64 `json:"totalToneladas" validate:"required,gt=0"`
	ValorPorTonelada float64 `json:"valorPorTonelada" validate:"required,gt=0"`
	ValorTotal       float64 `json:"valorTotal" validate:"required,gt=0"`
	DataPagamento    string  `json:"dataPagamento" validate:"required,datetime=2006-01-02"`
	Status           string  `json:"status" validate:"omitempty,oneof=pendente processando pago cancelado"`
	MetodoPagamento  string  `json:"metodoPagamento" validate:"required,oneof=pix transferencia_bancaria"`
	Observacoes      string  `json:"observacoes"`
}

// AtualizarPagamentoDTO é o payload de atualização parcial.
type AtualizarPagamentoDTO struct {
	PeriodoFretes    *string  `json:"periodoFretes" validate:"omitempty,min=3"`
	QuantidadeFretes *int     `json:"quantidadeFretes" validate:"omitempty,gt=0"`
	FretesIncluidos  *string  `json:"fretesIncluidos"`
	TotalToneladas   *float64 `json:"totalToneladas" validate:"omitempty,gt=0"`
	ValorPorTonelada *float64 `json:"valorPorTonelada" validate:"omitempty,gt=0"`
	ValorTotal       *float64 `json:"valorTotal" validate:"omitempty,gt=0"`
	DataPagamento    *string  `json:"dataPagamento" validate:"omitempty,datetime=2006-01-02"`
	Status           *string  `json:"status" validate:"omitempty,oneof=pendente processando pago cancelado"`
	MetodoPagamento  *string  `json:"metodoPagamento" validate:"omitempty,oneof=pix transferencia_bancaria"`
	Observacoes      *string  `json:"observacoes"`
}
