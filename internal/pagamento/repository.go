package pagamento

import "gorm.io/gorm"

// Repository encapsula operações de banco para Pagamento
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListarTodos() ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := r.DB.Order("created_at DESC").Find(&pagamentos).Error
	return pagamentos, err
}

// ListarPorStatus retorna os pagamentos em um status específico.
func (r *Repository) ListarPorStatus(status string) ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := r.DB.Where("status = ?", status).Order("created_at DESC").Find(&pagamentos).Error
	return pagamentos, err
}

func (r *Repository) BuscarPorID(id uint) (*Pagamento, error) {
	var p Pagamento
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Salvar(p *Pagamento) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Deletar(id uint) (int64, error) {
	res := r.DB.Delete(&Pagamento{}, id)
	return res.RowsAffected, res.Error
}
