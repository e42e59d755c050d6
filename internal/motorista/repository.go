package motorista

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, m *Motorista) error
	ListarTodos(db *gorm.DB) ([]Motorista, error)
	BuscarPorID(db *gorm.DB, id uint) (*Motorista, error)
	Salvar(db *gorm.DB, m *Motorista) error
	Deletar(db *gorm.DB, id uint) (int64, error)
	ContarPorStatus(db *gorm.DB, status string) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, m *Motorista) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Motorista, error) {
	var motoristas []Motorista
	err := db.Order("nome ASC").Find(&motoristas).Error
	return motoristas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Motorista, error) {
	var m Motorista
	if err := db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Motorista) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&Motorista{}, id)
	return res.RowsAffected, res.Error
}

func (r *repositoryImpl) ContarPorStatus(db *gorm.DB, status string) (int64, error) {
	var total int64
	err := db.Model(&Motorista{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
