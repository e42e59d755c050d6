package frota

import "gorm.io/gorm"

// Repository encapsula operações de banco para Caminhao
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Caminhao) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarTodos() ([]Caminhao, error) {
	var caminhoes []Caminhao
	err := r.DB.Order("placa ASC").Find(&caminhoes).Error
	return caminhoes, err
}

func (r *Repository) BuscarPorID(id uint) (*Caminhao, error) {
	var c Caminhao
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Salvar(c *Caminhao) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(id uint) (int64, error) {
	res := r.DB.Delete(&Caminhao{}, id)
	return res.RowsAffected, res.Error
}

// ContarPorStatus conta caminhões em um status (usado nos KPIs).
func (r *Repository) ContarPorStatus(status string) (int64, error) {
	var total int64
	err := r.DB.Model(&Caminhao{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
