package fazenda

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroLog/api-fretes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Criar trata POST /fazendas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarFazendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	f := Fazenda{
		Nome:             dto.Nome,
		Estado:           dto.Estado,
		Proprietario:     dto.Proprietario,
		Mercadoria:       dto.Mercadoria,
		Variedade:        dto.Variedade,
		Safra:            dto.Safra,
		PrecoPorTonelada: dto.PrecoPorTonelada,
		PesoMedioSaca:    25.0,
	}
	if dto.PesoMedioSaca != nil {
		f.PesoMedioSaca = *dto.PesoMedioSaca
	}
	if dto.ColheitaFinalizada != nil {
		f.ColheitaFinalizada = *dto.ColheitaFinalizada
	}

	if err := h.Repository.Criar(h.DB, &f); err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao criar fazenda")
		return
	}
	utils.RespostaJSON(w, http.StatusCreated, "Fazenda criada com sucesso", map[string]interface{}{"id": f.ID})
}

// Listar trata GET /fazendas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	fazendas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao listar fazendas")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Fazendas listadas com sucesso", fazendas)
}

// ObterPorID trata GET /fazendas/{id}, devolvendo a fazenda enriquecida
// com os agregados calculados a partir dos fretes e custos.
func (h *Handler) ObterPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Fazenda não encontrada")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter fazenda")
		return
	}

	ag, err := h.Repository.Agregados(h.DB, f.ID)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao calcular agregados da fazenda")
		return
	}
	ag.LucroLiquido = f.FaturamentoTotal - ag.TotalCustosOperacionais

	utils.RespostaJSON(w, http.StatusOK, "Fazenda carregada com sucesso", FazendaDetalheDTO{
		Fazenda:          *f,
		AgregadosFazenda: *ag,
	})
}

// Atualizar trata PUT /fazendas/{id} (atualização parcial, sobrescreve o
// que vier no payload).
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dto AtualizarFazendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	campos := dto.camposAtualizados()
	if len(campos) == 0 {
		utils.RespostaErro(w, http.StatusBadRequest, "Nenhum campo válido para atualizar")
		return
	}

	afetadas, err := h.Repository.Atualizar(h.DB, uint(id), campos)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar fazenda")
		return
	}
	if afetadas == 0 {
		utils.RespostaErro(w, http.StatusNotFound, "Fazenda não encontrada")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Fazenda atualizada com sucesso", nil)
}

// Deletar trata DELETE /fazendas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	afetadas, err := h.Repository.Deletar(h.DB, uint(id))
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao remover fazenda")
		return
	}
	if afetadas == 0 {
		utils.RespostaErro(w, http.StatusNotFound, "Fazenda não encontrada")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Fazenda removida com sucesso", nil)
}

// IncrementarVolume trata POST /fazendas/{id}/incrementar-volume
func (h *Handler) IncrementarVolume(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dto IncrementarVolumeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Fazenda não encontrada")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter fazenda")
		return
	}

	if err := h.Repository.IncrementarToneladas(h.DB, uint(id), dto.Toneladas); err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao incrementar volume")
		return
	}

	atualizada, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao recarregar fazenda")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Volume incrementado com sucesso", atualizada)
}

// camposAtualizados converte o DTO em um map coluna → valor apenas com os
// campos presentes no payload.
func (dto *AtualizarFazendaDTO) camposAtualizados() map[string]interface{} {
	campos := map[string]interface{}{}
	if dto.Nome != nil {
		campos["nome"] = *dto.Nome
	}
	if dto.Estado != nil {
		campos["estado"] = *dto.Estado
	}
	if dto.Proprietario != nil {
		campos["proprietario"] = *dto.Proprietario
	}
	if dto.Mercadoria != nil {
		campos["mercadoria"] = *dto.Mercadoria
	}
	if dto.Variedade != nil {
		campos["variedade"] = *dto.Variedade
	}
	if dto.Safra != nil {
		campos["safra"] = *dto.Safra
	}
	if dto.PrecoPorTonelada != nil {
		campos["preco_por_tonelada"] = *dto.PrecoPorTonelada
	}
	if dto.PesoMedioSaca != nil {
		campos["peso_medio_saca"] = *dto.PesoMedioSaca
	}
	if dto.TotalSacasCarregadas != nil {
		campos["total_sacas_carregadas"] = *dto.TotalSacasCarregadas
	}
	if dto.TotalToneladas != nil {
		campos["total_toneladas"] = *dto.TotalToneladas
	}
	if dto.FaturamentoTotal != nil {
		campos["faturamento_total"] = *dto.FaturamentoTotal
	}
	if dto.UltimoFrete != nil {
		campos["ultimo_frete"] = *dto.UltimoFrete
	}
	if dto.ColheitaFinalizada != nil {
		campos["colheita_finalizada"] = *dto.ColheitaFinalizada
	}
	return campos
}
