package frete

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Frete
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Listar retorna os fretes aplicando os filtros opcionais, do mais
// recente para o mais antigo.
func (r *Repository) Listar(filtros FiltrosListagem) ([]Frete, error) {
	consulta := r.DB.Model(&Frete{})
	if filtros.DataInicio != "" {
		consulta = consulta.Where("data_frete >= ?", filtros.DataInicio)
	}
	if filtros.DataFim != "" {
		consulta = consulta.Where("data_frete <= ?", filtros.DataFim)
	}
	if filtros.MotoristaID != 0 {
		consulta = consulta.Where("motorista_id = ?", filtros.MotoristaID)
	}
	if filtros.FazendaID != 0 {
		consulta = consulta.Where("fazenda_id = ?", filtros.FazendaID)
	}

	var fretes []Frete
	err := consulta.Order("data_frete DESC, created_at DESC").Find(&fretes).Error
	return fretes, err
}

// BuscarPorID retorna um frete pelo ID
func (r *Repository) BuscarPorID(id uint) (*Frete, error) {
	var f Frete
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// Salvar persiste alterações em um frete existente
func (r *Repository) Salvar(f *Frete) error {
	return r.DB.Save(f).Error
}

// Deletar remove um frete. Os custos vinculados permanecem (não há
// cascata), como no restante do sistema.
func (r *Repository) Deletar(id uint) (int64, error) {
	res := r.DB.Delete(&Frete{}, id)
	return res.RowsAffected, res.Error
}
