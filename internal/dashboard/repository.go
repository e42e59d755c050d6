package dashboard

import (
	"math"

	"github.com/AgroLog/api-fretes/internal/frete"
	"github.com/AgroLog/api-fretes/internal/frota"
	"github.com/AgroLog/api-fretes/internal/motorista"
	"gorm.io/gorm"
)

// Repository agrega leituras do painel. Tudo aqui é derivado do estado
// corrente das tabelas a cada chamada; nada é cacheado.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ObterKPIs consolida receita, custos, lucro e contagens gerais.
func (r *Repository) ObterKPIs() (*KPIs, error) {
	var agregado struct {
		ReceitaTotal float64
		CustosTotal  float64
		LucroTotal   float64
		TotalFretes  int64
	}
	err := r.DB.Model(&frete.Frete{}).
		Select(`COALESCE(SUM(receita), 0) AS receita_total,
			COALESCE(SUM(custos), 0) AS custos_total,
			COALESCE(SUM(receita - custos), 0) AS lucro_total,
			COUNT(*) AS total_fretes`).
		Scan(&agregado).Error
	if err != nil {
		return nil, err
	}

	var motoristasAtivos int64
	if err := r.DB.Model(&motorista.Motorista{}).
		Where("status = ?", motorista.StatusAtivo).
		Count(&motoristasAtivos).Error; err != nil {
		return nil, err
	}

	var caminhoesDisponiveis int64
	if err := r.DB.Model(&frota.Caminhao{}).
		Where("status = ?", frota.StatusDisponivel).
		Count(&caminhoesDisponiveis).Error; err != nil {
		return nil, err
	}

	return &KPIs{
		ReceitaTotal:         agregado.ReceitaTotal,
		CustosTotal:          agregado.CustosTotal,
		LucroTotal:           agregado.LucroTotal,
		MargemLucro:          CalcularMargem(agregado.LucroTotal, agregado.ReceitaTotal),
		TotalFretes:          agregado.TotalFretes,
		MotoristasAtivos:     motoristasAtivos,
		CaminhoesDisponiveis: caminhoesDisponiveis,
	}, nil
}

// EstatisticasPorRota agrupa os fretes por par origem/destino, do mais
// lucrativo para o menos.
func (r *Repository) EstatisticasPorRota() ([]EstatisticaRota, error) {
	var rotas []EstatisticaRota
	err := r.DB.Model(&frete.Frete{}).
		Select(`origem, destino,
			COUNT(*) AS total_fretes,
			COALESCE(SUM(receita), 0) AS receita_total,
			COALESCE(SUM(custos), 0) AS custos_total,
			COALESCE(SUM(receita - custos), 0) AS lucro_total`).
		Group("origem, destino").
		Order("lucro_total DESC").
		Scan(&rotas).Error
	return rotas, err
}

// CalcularMargem devolve a margem de lucro percentual com 2 casas.
// Receita zero devolve 0 para nunca dividir por zero.
func CalcularMargem(lucro, receita float64) float64 {
	if receita <= 0 {
		return 0
	}
	return math.Round(lucro/receita*100*100) / 100
}
