package fazenda

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, f *Fazenda) error
	ListarTodas(db *gorm.DB) ([]Fazenda, error)
	BuscarPorID(db *gorm.DB, id uint) (*Fazenda, error)
	Atualizar(db *gorm.DB, id uint, campos map[string]interface{}) (int64, error)
	Deletar(db *gorm.DB, id uint) (int64, error)
	IncrementarToneladas(db *gorm.DB, id uint, toneladas float64) error
	Agregados(db *gorm.DB, id uint) (*AgregadosFazenda, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Fazenda) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Fazenda, error) {
	var fazendas []Fazenda
	err := db.Order("created_at DESC").Find(&fazendas).Error
	return fazendas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Fazenda, error) {
	var f Fazenda
	if err := db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, campos map[string]interface{}) (int64, error) {
	res := db.Model(&Fazenda{}).Where("id = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&Fazenda{}, id)
	return res.RowsAffected, res.Error
}

// IncrementarToneladas soma toneladas ao acumulado em um único UPDATE,
// atômico no banco mesmo com escritores concorrentes.
func (r *repositoryImpl) IncrementarToneladas(db *gorm.DB, id uint, toneladas float64) error {
	return db.Model(&Fazenda{}).Where("id = ?", id).
		Update("total_toneladas", gorm.Expr("total_toneladas + ?", toneladas)).Error
}

// Agregados rederiva os números da fazenda a partir das tabelas de fretes
// e custos. As tabelas são referenciadas pelo nome para não criar ciclo de
// import com os pacotes frete/custo.
func (r *repositoryImpl) Agregados(db *gorm.DB, id uint) (*AgregadosFazenda, error) {
	var ag AgregadosFazenda

	if err := db.Table("fretes").Where("fazenda_id = ?", id).
		Count(&ag.TotalFretesRealizados).Error; err != nil {
		return nil, err
	}

	if err := db.Table("custos").
		Joins("JOIN fretes ON fretes.id = custos.frete_id").
		Where("fretes.fazenda_id = ?", id).
		Select("COALESCE(SUM(custos.valor), 0)").
		Scan(&ag.TotalCustosOperacionais).Error; err != nil {
		return nil, err
	}

	var ultimo struct {
		Codigo        string
		MotoristaNome string
		CaminhaoPlaca string
		Origem        string
		Destino       string
		DataFrete     string
	}
	err := db.Table("fretes").Where("fazenda_id = ?", id).
		Order("data_frete DESC, created_at DESC").Limit(1).
		Select("codigo, motorista_nome, caminhao_placa, origem, destino, data_frete").
		Scan(&ultimo).Error
	if err != nil {
		return nil, err
	}
	ag.UltimoFreteCodigo = ultimo.Codigo
	ag.UltimoFreteMotorista = ultimo.MotoristaNome
	ag.UltimoFretePlaca = ultimo.CaminhaoPlaca
	ag.UltimoFreteOrigem = ultimo.Origem
	ag.UltimoFreteDestino = ultimo.Destino
	ag.UltimoFreteData = ultimo.DataFrete

	return &ag, nil
}
