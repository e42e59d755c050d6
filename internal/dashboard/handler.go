package dashboard

import (
	"net/http"

	"github.com/AgroLog/api-fretes/internal/utils"
	"gorm.io/gorm"
)

// Handler gerencia as rotas do painel
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// ObterKPIs trata GET /dashboard/kpis
func (h *Handler) ObterKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.Repo.ObterKPIs()
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao carregar KPIs")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "KPIs carregados com sucesso", kpis)
}

// EstatisticasPorRota trata GET /dashboard/estatisticas-rotas
func (h *Handler) EstatisticasPorRota(w http.ResponseWriter, r *http.Request) {
	rotas, err := h.Repo.EstatisticasPorRota()
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao carregar estatísticas por rota")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Estatísticas por rota carregadas com sucesso", rotas)
}
