package custo

import (
	"time"

	"gorm.io/gorm"
)

// Custo representa um gasto atribuído a exatamente um frete. Toda mutação
// de custo (criação, atualização ou remoção) rederiva os campos custos e
// resultado do frete pai dentro da mesma transação.
type Custo struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	FreteID uint   `gorm:"not null;index" json:"freteId"`
	Tipo    string `gorm:"size:20;not null" json:"tipo"` // combustivel | manutencao | pedagio | outros

	Descricao string  `gorm:"size:255;not null" json:"descricao"`
	Valor     float64 `gorm:"not null" json:"valor"`
	Data      string  `gorm:"size:10;not null" json:"data"` // AAAA-MM-DD

	Comprovante bool   `gorm:"not null;default:false" json:"comprovante"`
	Observacoes string `json:"observacoes,omitempty"`

	// Rótulos informativos preenchidos na criação
	Motorista string `gorm:"size:255" json:"motorista,omitempty"`
	Caminhao  string `gorm:"size:50" json:"caminhao,omitempty"`
	Rota      string `gorm:"size:255" json:"rota,omitempty"`

	Litros          *float64 `json:"litros,omitempty"`
	TipoCombustivel string   `gorm:"size:20" json:"tipoCombustivel,omitempty"` // gasolina | diesel | etanol | gnv

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Custo{})
}
