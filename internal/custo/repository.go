package custo

import (
	"github.com/AgroLog/api-fretes/internal/frete"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Custo
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarTodos retorna todos os custos, do mais recente para o mais antigo
func (r *Repository) ListarTodos() ([]Custo, error) {
	var custos []Custo
	err := r.DB.Order("created_at DESC").Find(&custos).Error
	return custos, err
}

// BuscarPorID retorna um custo pelo ID
func (r *Repository) BuscarPorID(id uint) (*Custo, error) {
	var c Custo
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// RecalcularTotaisDoFrete rederiva custos e resultado do frete a partir da
// soma dos custos vinculados. É o único caminho que mexe nesses campos,
// então criação, atualização e remoção de custo convergem para o mesmo
// valor. Deve rodar na transação da mutação.
func RecalcularTotaisDoFrete(tx *gorm.DB, freteID uint) error {
	var total float64
	if err := tx.Model(&Custo{}).Where("frete_id = ?", freteID).
		Select("COALESCE(SUM(valor), 0)").Scan(&total).Error; err != nil {
		return err
	}
	return tx.Model(&frete.Frete{}).Where("id = ?", freteID).
		Updates(map[string]interface{}{
			"custos":    total,
			"resultado": gorm.Expr("COALESCE(receita, 0) - ?", total),
		}).Error
}
