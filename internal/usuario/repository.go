package usuario

import "gorm.io/gorm"

// Repository define as operações de banco para Usuario
type Repository interface {
	Salvar(db *gorm.DB, u *Usuario) error
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	Deletar(db *gorm.DB, id uint) (int64, error)
}

type repository struct{}

// NewRepository retorna a implementação padrão
func NewRepository() Repository {
	return &repository{}
}

func (r *repository) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repository) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("nome ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *repository) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Deletar(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&Usuario{}, id)
	return res.RowsAffected, res.Error
}
