package frete

// CriarFreteDTO é o payload de criação de frete. Receita é opcional: sem
// ela o valor é derivado de toneladas * valor por tonelada.
type CriarFreteDTO struct {
	Origem           string   `json:"origem" validate:"required,min=3"`
	Destino          string   `json:"destino" validate:"required,min=3"`
	MotoristaID      uint     `json:"motoristaId" validate:"required,gt=0"`
	MotoristaNome    string   `json:"motoristaNome" validate:"required,min=3"`
	CaminhaoID       uint     `json:"caminhaoId" validate:"required,gt=0"`
	CaminhaoPlaca    string   `json:"caminhaoPlaca" validate:"required,min=5"`
	FazendaID        *uint    `json:"fazendaId" validate:"omitempty,gt=0"`
	FazendaNome      string   `json:"fazendaNome"`
	Mercadoria       string   `json:"mercadoria" validate:"required"`
	Variedade        string   `json:"variedade"`
	DataFrete        string   `json:"dataFrete" validate:"required,datetime=2006-01-02"`
	QuantidadeSacas  int64    `json:"quantidadeSacas" validate:"required,gt=0"`
	Toneladas        float64  `json:"toneladas" validate:"required,gt=0"`
	ValorPorTonelada float64  `json:"valorPorTonelada" validate:"required,gt=0"`
	Receita          *float64 `json:"receita" validate:"omitempty,gt=0"`
	PagamentoID      *uint    `json:"pagamentoId" validate:"omitempty,gt=0"`
}

// AtualizarFreteDTO é o payload de atualização parcial.
type AtualizarFreteDTO struct {
	Origem           *string  `json:"origem" validate:"omitempty,min=3"`
	Destino          *string  `json:"destino" validate:"omitempty,min=3"`
	MotoristaID      *uint    `json:"motoristaId" validate:"omitempty,gt=0"`
	MotoristaNome    *string  `json:"motoristaNome" validate:"omitempty,min=3"`
	CaminhaoID       *uint    `json:"caminhaoId" validate:"omitempty,gt=0"`
	CaminhaoPlaca    *string  `json:"caminhaoPlaca" validate:"omitempty,min=5"`
	FazendaID        *uint    `json:"fazendaId" validate:"omitempty,gt=0"`
	FazendaNome      *string  `json:"fazendaNome"`
	Mercadoria       *string  `json:"mercadoria" validate:"omitempty,min=1"`
	Variedade        *string  `json:"variedade"`
	DataFrete        *string  `json:"dataFrete" validate:"omitempty,datetime=2006-01-02"`
	QuantidadeSacas  *int64   `json:"quantidadeSacas" validate:"omitempty,gt=0"`
	Toneladas        *float64 `json:"toneladas" validate:"omitempty,gt=0"`
	ValorPorTonelada *float64 `json:"valorPorTonelada" validate:"omitempty,gt=0"`
	Receita          *float64 `json:"receita" validate:"omitempty,gt=0"`
	Resultado        *float64 `json:"resultado"`
	PagamentoID      *uint    `json:"pagamentoId" validate:"omitempty,gt=0"`
}

// FiltrosListagem são os filtros opcionais do GET /fretes.
type FiltrosListagem struct {
	DataInicio  string
	DataFim     string
	MotoristaID uint
	FazendaID   uint
}
