package pagamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroLog/api-fretes/internal/motorista"
	"github.com/AgroLog/api-fretes/internal/sequencial"
	"github.com/AgroLog/api-fretes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

// NewHandler cria um novo handler de pagamentos
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Criar trata POST /pagamentos. A emissão do código PAG e o insert
// acontecem na mesma transação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarPagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	defer r.Body.Close()

	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	p := Pagamento{
		MotoristaID:      dto.MotoristaID,
		MotoristaNome:    dto.MotoristaNome,
		PeriodoFretes:    dto.PeriodoFretes,
		QuantidadeFretes: dto.QuantidadeFretes,
		FretesIncluidos:  dto.FretesIncluidos,
		TotalToneladas:   dto.TotalToneladas,
		ValorPorTonelada: dto.ValorPorTonelada,
		ValorTotal:       dto.ValorTotal,
		DataPagamento:    dto.DataPagamento,
		Status:           StatusPendente,
		MetodoPagamento:  dto.MetodoPagamento,
		Observacoes:      dto.Observacoes,
	}
	if dto.Status != "" {
		p.Status = dto.Status
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Não foi possível iniciar transação")
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			utils.RespostaErro(w, http.StatusInternalServerError, "Falha interna")
		}
	}()

	var m motorista.Motorista
	if err := tx.Select("id").First(&m, dto.MotoristaID).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Motorista não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao verificar motorista")
		return
	}

	codigo, err := sequencial.ProximoCodigo(tx, "PAG")
	if err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao gerar código do pagamento")
		return
	}
	p.Codigo = codigo

	if err := tx.Create(&p).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespostaErro(w, http.StatusConflict, "Código de pagamento já cadastrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao criar pagamento")
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao confirmar transação")
		return
	}

	utils.RespostaJSON(w, http.StatusCreated, "Pagamento criado com sucesso", map[string]interface{}{
		"id":     p.ID,
		"codigo": p.Codigo,
	})
}

// Listar trata GET /pagamentos, com filtro opcional ?status=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		pagamentos []Pagamento
		err        error
	)
	if status != "" {
		pagamentos, err = h.Repository.ListarPorStatus(status)
	} else {
		pagamentos, err = h.Repository.ListarTodos()
	}
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao listar pagamentos")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Pagamentos listados com sucesso", pagamentos)
}

// ObterPorID trata GET /pagamentos/{id}
func (h *Handler) ObterPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	p, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Pagamento não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter pagamento")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Pagamento carregado com sucesso", p)
}

// Atualizar trata PUT /pagamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	p, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Pagamento não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter pagamento")
		return
	}

	var dto AtualizarPagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	if dto.PeriodoFretes != nil {
		p.PeriodoFretes = *dto.PeriodoFretes
	}
	if dto.QuantidadeFretes != nil {
		p.QuantidadeFretes = *dto.QuantidadeFretes
	}
	if dto.FretesIncluidos != nil {
		p.FretesIncluidos = *dto.FretesIncluidos
	}
	if dto.TotalToneladas != nil {
		p.TotalToneladas = *dto.TotalToneladas
	}
	if dto.ValorPorTonelada != nil {
		p.ValorPorTonelada = *dto.ValorPorTonelada
	}
	if dto.ValorTotal != nil {
		p.ValorTotal = *dto.ValorTotal
	}
	if dto.DataPagamento != nil {
		p.DataPagamento = *dto.DataPagamento
	}
	if dto.Status != nil {
		p.Status = *dto.Status
	}
	if dto.MetodoPagamento != nil {
		p.MetodoPagamento = *dto.MetodoPagamento
	}
	if dto.Observacoes != nil {
		p.Observacoes = *dto.Observacoes
	}

	if err := h.Repository.Salvar(p); err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar pagamento")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Pagamento atualizado com sucesso", p)
}

// Deletar trata DELETE /pagamentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	afetadas, err := h.Repository.Deletar(uint(id))
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao remover pagamento")
		return
	}
	if afetadas == 0 {
		utils.RespostaErro(w, http.StatusNotFound, "Pagamento não encontrado")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Pagamento removido com sucesso", nil)
}
