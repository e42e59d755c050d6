package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Roles aceitos
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// Usuario é quem acessa o sistema.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:255;not null" json:"nome"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	SenhaHash string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'operador'" json:"role"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
