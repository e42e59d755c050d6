package frota

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um caminhão
const (
	StatusDisponivel = "disponivel"
	StatusEmViagem   = "em_viagem"
	StatusManutencao = "manutencao"
)

// Caminhao representa um veículo da frota.
type Caminhao struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Placa        string `gorm:"size:10;not null;uniqueIndex" json:"placa"`
	PlacaCarreta string `gorm:"size:10" json:"placaCarreta,omitempty"`
	Modelo       string `gorm:"size:100;not null" json:"modelo"`

	AnoFabricacao       int     `gorm:"not null" json:"anoFabricacao"`
	CapacidadeToneladas float64 `gorm:"not null" json:"capacidadeToneladas"`
	KmAtual             int64   `gorm:"not null;default:0" json:"kmAtual"`

	Status          string `gorm:"size:20;not null;default:'disponivel';index" json:"status"`
	TipoVeiculo     string `gorm:"size:20;not null" json:"tipoVeiculo"` // TRUCADO | TOCO | CARRETA | BITREM | RODOTREM
	TipoCombustivel string `gorm:"size:10" json:"tipoCombustivel,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Caminhao{})
}
