package pagamento

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um pagamento
const (
	StatusPendente    = "pendente"
	StatusProcessando = "processando"
	StatusPago        = "pago"
	StatusCancelado   = "cancelado"
)

// Pagamento representa o acerto de um período de fretes de um motorista.
type Pagamento struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Codigo segue a mesma numeração legível dos fretes (PAG-2026-001).
	Codigo string `gorm:"size:20;not null;uniqueIndex" json:"codigo"`

	MotoristaID   uint   `gorm:"not null;index" json:"motoristaId"`
	MotoristaNome string `gorm:"size:255;not null" json:"motoristaNome"`

	PeriodoFretes    string `gorm:"size:100;not null" json:"periodoFretes"`
	QuantidadeFretes int    `gorm:"not null" json:"quantidadeFretes"`
	FretesIncluidos  string `json:"fretesIncluidos,omitempty"` // códigos separados por vírgula

	TotalToneladas   float64 `gorm:"not null" json:"totalToneladas"`
	ValorPorTonelada float64 `gorm:"not null" json:"valorPorTonelada"`
	ValorTotal       float64 `gorm:"not null" json:"valorTotal"`

	DataPagamento   string `gorm:"size:10;not null" json:"dataPagamento"`
	Status          string `gorm:"size:20;not null;default:'pendente';index" json:"status"`
	MetodoPagamento string `gorm:"size:30;not null" json:"metodoPagamento"` // pix | transferencia_bancaria
	Observacoes     string `json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pagamento{})
}
