package motorista

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um motorista
const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
	StatusFerias  = "ferias"
)

// Motorista representa um condutor próprio ou terceirizado.
type Motorista struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:255;not null" json:"nome"`
	CPF      string `gorm:"size:14;not null;uniqueIndex" json:"cpf"`
	Telefone string `gorm:"size:20;not null" json:"telefone"`
	Email    string `gorm:"size:255" json:"email,omitempty"`

	CNH          string `gorm:"size:20;not null" json:"cnh"`
	CNHCategoria string `gorm:"size:5;not null" json:"cnhCategoria"`
	CNHValidade  string `gorm:"size:10" json:"cnhValidade,omitempty"` // AAAA-MM-DD

	Status string `gorm:"size:20;not null;default:'ativo';index" json:"status"`
	Tipo   string `gorm:"size:20;not null" json:"tipo"` // proprio | terceirizado

	DataAdmissao string `gorm:"size:10" json:"dataAdmissao,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Motorista{})
}
