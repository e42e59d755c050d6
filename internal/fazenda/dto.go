package fazenda

// CriarFazendaDTO é o payload de criação de fazenda.
type CriarFazendaDTO struct {
	Nome               string   `json:"fazenda" validate:"required,min=3"`
	Estado             string   `json:"estado" validate:"required,min=2"`
	Proprietario       string   `json:"proprietario" validate:"required,min=3"`
	Mercadoria         string   `json:"mercadoria" validate:"required"`
	Variedade          string   `json:"variedade"`
	Safra              string   `json:"safra" validate:"required,min=4"`
	PrecoPorTonelada   float64  `json:"precoPorTonelada" validate:"required,gt=0"`
	PesoMedioSaca      *float64 `json:"pesoMedioSaca" validate:"omitempty,gt=0"`
	ColheitaFinalizada *bool    `json:"colheitaFinalizada"`
}

// AtualizarFazendaDTO é o payload de atualização parcial. Campos ausentes
// permanecem como estão; os totais acumulados também podem ser sobrescritos
// por aqui (correção manual).
type AtualizarFazendaDTO struct {
	Nome                 *string  `json:"fazenda" validate:"omitempty,min=3"`
	Estado               *string  `json:"estado" validate:"omitempty,min=2"`
	Proprietario         *string  `json:"proprietario" validate:"omitempty,min=3"`
	Mercadoria           *string  `json:"mercadoria" validate:"omitempty,min=1"`
	Variedade            *string  `json:"variedade"`
	Safra                *string  `json:"safra" validate:"omitempty,min=4"`
	PrecoPorTonelada     *float64 `json:"precoPorTonelada" validate:"omitempty,gt=0"`
	PesoMedioSaca        *float64 `json:"pesoMedioSaca" validate:"omitempty,gt=0"`
	TotalSacasCarregadas *int64   `json:"totalSacasCarregadas" validate:"omitempty,gte=0"`
	TotalToneladas       *float64 `json:"totalToneladas" validate:"omitempty,gte=0"`
	FaturamentoTotal     *float64 `json:"faturamentoTotal" validate:"omitempty,gte=0"`
	UltimoFrete          *string  `json:"ultimoFrete"`
	ColheitaFinalizada   *bool    `json:"colheitaFinalizada"`
}

// IncrementarVolumeDTO é o payload do POST /fazendas/{id}/incrementar-volume.
type IncrementarVolumeDTO struct {
	Toneladas float64 `json:"toneladas" validate:"required,gt=0"`
}

// AgregadosFazenda são os números derivados das tabelas de fretes e custos,
// calculados na leitura.
type AgregadosFazenda struct {
	TotalFretesRealizados   int64   `json:"totalFretesRealizados"`
	TotalCustosOperacionais float64 `json:"totalCustosOperacionais"`
	LucroLiquido            float64 `json:"lucroLiquido"`
	UltimoFreteCodigo       string  `json:"ultimoFreteCodigo,omitempty"`
	UltimoFreteMotorista    string  `json:"ultimoFreteMotorista,omitempty"`
	UltimoFretePlaca        string  `json:"ultimoFretePlaca,omitempty"`
	UltimoFreteOrigem       string  `json:"ultimoFreteOrigem,omitempty"`
	UltimoFreteDestino      string  `json:"ultimoFreteDestino,omitempty"`
	UltimoFreteData         string  `json:"ultimoFreteData,omitempty"`
}

// FazendaDetalheDTO é a fazenda enriquecida devolvida pelo GET por id.
type FazendaDetalheDTO struct {
	Fazenda
	AgregadosFazenda
}
