package fazenda

import (
	"time"

	"gorm.io/gorm"
)

// Fazenda representa um ponto de carregamento (fornecedor/cliente) com os
// totais acumulados de negócio. Os campos Total* e FaturamentoTotal são
// alimentados incrementalmente na criação de fretes; os relatórios de
// custo sempre recalculam a partir das tabelas de origem.
type Fazenda struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nome         string `gorm:"size:255;not null" json:"fazenda"`
	Estado       string `gorm:"size:100;not null" json:"estado"`
	Proprietario string `gorm:"size:255;not null" json:"proprietario"`
	Mercadoria   string `gorm:"size:100;not null" json:"mercadoria"`
	Variedade    string `gorm:"size:100" json:"variedade,omitempty"`
	Safra        string `gorm:"size:20;not null" json:"safra"`

	PrecoPorTonelada float64 `gorm:"not null;default:0" json:"precoPorTonelada"`
	PesoMedioSaca    float64 `gorm:"not null;default:25" json:"pesoMedioSaca"`

	TotalSacasCarregadas int64   `gorm:"not null;default:0" json:"totalSacasCarregadas"`
	TotalToneladas       float64 `gorm:"not null;default:0" json:"totalToneladas"`
	FaturamentoTotal     float64 `gorm:"not null;default:0" json:"faturamentoTotal"`

	// Data do último frete carregado nesta fazenda (AAAA-MM-DD).
	UltimoFrete        string `gorm:"size:10" json:"ultimoFrete,omitempty"`
	ColheitaFinalizada bool   `gorm:"not null;default:false" json:"colheitaFinalizada"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Fazenda{})
}
