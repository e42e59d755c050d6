package frete

import (
	"time"

	"gorm.io/gorm"
)

// Frete representa um transporte de origem a destino com motorista e
// caminhão atribuídos e os campos financeiros derivados.
//
// Invariantes mantidos pelos caminhos de escrita:
//   - Receita = Toneladas * ValorPorTonelada quando não informada;
//   - Resultado = Receita - Custos sempre que ambos são conhecidos;
//   - Custos é rederivado da tabela de custos em toda mutação de custo.
type Frete struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Codigo é o identificador legível sequencial por ano (FRT-2026-001),
	// emitido pelo pacote sequencial dentro da transação de criação.
	Codigo string `gorm:"size:20;not null;uniqueIndex" json:"codigo"`

	Origem  string `gorm:"size:255;not null" json:"origem"`
	Destino string `gorm:"size:255;not null" json:"destino"`

	MotoristaID   uint   `gorm:"not null;index" json:"motoristaId"`
	MotoristaNome string `gorm:"size:255" json:"motoristaNome"` // cache do nome na data do frete
	CaminhaoID    uint   `gorm:"not null;index" json:"caminhaoId"`
	CaminhaoPlaca string `gorm:"size:10" json:"caminhaoPlaca"` // cache da placa na data do frete

	FazendaID   *uint  `gorm:"index" json:"fazendaId,omitempty"`
	FazendaNome string `gorm:"size:255" json:"fazendaNome,omitempty"`

	Mercadoria string `gorm:"size:100;not null" json:"mercadoria"`
	Variedade  string `gorm:"size:100" json:"variedade,omitempty"`
	DataFrete  string `gorm:"size:10;not null;index" json:"dataFrete"` // AAAA-MM-DD

	QuantidadeSacas  int64   `gorm:"not null" json:"quantidadeSacas"`
	Toneladas        float64 `gorm:"not null" json:"toneladas"`
	ValorPorTonelada float64 `gorm:"not null" json:"valorPorTonelada"`

	Receita   float64 `gorm:"not null;default:0" json:"receita"`
	Custos    float64 `gorm:"not null;default:0" json:"custos"`
	Resultado float64 `gorm:"not null;default:0" json:"resultado"`

	PagamentoID *uint `gorm:"index" json:"pagamentoId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Frete{})
}
