package sequencial

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Sequencia guarda o último número emitido por prefixo e ano. Os códigos
// legíveis (FRT-2026-001, PAG-2026-001...) são derivados daqui.
type Sequencia struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Prefixo string `gorm:"size:10;not null;uniqueIndex:idx_sequencias_prefixo_ano" json:"prefixo"`
	Ano     int    `gorm:"not null;uniqueIndex:idx_sequencias_prefixo_ano" json:"ano"`
	Valor   int64  `gorm:"not null;default:0" json:"valor"`
}

// TableName fixa o nome da tabela em "sequencias", como usado no SQL cru
// abaixo; a pluralização automática do GORM geraria "sequencia".
func (Sequencia) TableName() string { return "sequencias" }

// Migrate cria a tabela de sequências.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Sequencia{})
}

// ProximoCodigo emite o próximo código legível para o prefixo no ano
// corrente. Deve ser chamado dentro da transação que insere o registro,
// para que um rollback não deixe códigos com buracos desnecessários.
func ProximoCodigo(tx *gorm.DB, prefixo string) (string, error) {
	return ProximoCodigoNoAno(tx, prefixo, time.Now().Year())
}

// ProximoCodigoNoAno incrementa e lê o contador em um único comando
// INSERT ... ON CONFLICT ... RETURNING. O banco serializa o incremento,
// então chamadas concorrentes nunca recebem o mesmo número.
func ProximoCodigoNoAno(tx *gorm.DB, prefixo string, ano int) (string, error) {
	var valor int64
	err := tx.Raw(`
		INSERT INTO sequencias (prefixo, ano, valor) VALUES (?, ?, 1)
		ON CONFLICT (prefixo, ano) DO UPDATE SET valor = sequencias.valor + 1
		RETURNING valor`, prefixo, ano).Scan(&valor).Error
	if err != nil {
		return "", err
	}
	// %03d alarga sozinho depois de 999; códigos continuam únicos.
	return fmt.Sprintf("%s-%d-%03d", prefixo, ano, valor), nil
}
