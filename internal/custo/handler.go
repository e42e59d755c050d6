package custo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroLog/api-fretes/internal/frete"
	"github.com/AgroLog/api-fretes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

// NewHandler cria um novo handler de custos
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Criar trata POST /custos.
//
// Transação única: o frete pai precisa existir antes do insert; depois do
// insert os totais do pai são rederivados. Ou o custo e a atualização do
// frete ficam visíveis juntos, ou nada fica.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarCustoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	defer r.Body.Close()

	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	c := Custo{
		FreteID:         dto.FreteID,
		Tipo:            dto.Tipo,
		Descricao:       dto.Descricao,
		Valor:           dto.Valor,
		Data:            dto.Data,
		Observacoes:     dto.Observacoes,
		Motorista:       dto.Motorista,
		Caminhao:        dto.Caminhao,
		Rota:            dto.Rota,
		Litros:          dto.Litros,
		TipoCombustivel: dto.TipoCombustivel,
	}
	if dto.Comprovante != nil {
		c.Comprovante = *dto.Comprovante
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

	var pai frete.Frete
	if err := tx.Select("id").First(&pai, dto.FreteID).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Frete não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao verificar frete")
		return
	}

	if err := tx.Create(&c).Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao criar custo")
		return
	}

	if err := RecalcularTotaisDoFrete(tx, dto.FreteID); err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar totais do frete")
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao confirmar transação")
		return
	}

	utils.RespostaJSON(w, http.StatusCreated, "Custo criado com sucesso", map[string]interface{}{"id": c.ID})
}

// Listar trata GET /custos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	custos, err := h.Repository.ListarTodos()
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao listar custos")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Custos listados com sucesso", custos)
}

// ObterPorID trata GET /custos/{id}
func (h *Handler) ObterPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Custo não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter custo")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Custo carregado com sucesso", c)
}

// Atualizar trata PUT /custos/{id}. Mudanças de valor ou de frete pai
// rederivam os totais dos fretes envolvidos na mesma transação.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dto AtualizarCustoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
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

	var c Custo
	if err := tx.First(&c, id).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Custo não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter custo")
		return
	}

	freteOriginal := c.FreteID
	if dto.FreteID != nil && *dto.FreteID != freteOriginal {
		var novoPai frete.Frete
		if err := tx.Select("id").First(&novoPai, *dto.FreteID).Error; err != nil {
			_ = tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespostaErro(w, http.StatusNotFound, "Frete não encontrado")
				return
			}
			utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao verificar frete")
			return
		}
	}

	aplicarAtualizacao(&c, &dto)

	if err := tx.Save(&c).Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar custo")
		return
	}

	if err := RecalcularTotaisDoFrete(tx, c.FreteID); err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar totais do frete")
		return
	}
	if c.FreteID != freteOriginal {
		if err := RecalcularTotaisDoFrete(tx, freteOriginal); err != nil {
			_ = tx.Rollback()
			utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar totais do frete anterior")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao confirmar transação")
		return
	}

	utils.RespostaJSON(w, http.StatusOK, "Custo atualizado com sucesso", c)
}

// Deletar trata DELETE /custos/{id}, rederivando os totais do frete pai
// na mesma transação.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
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

	var c Custo
	if err := tx.First(&c, id).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Custo não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter custo")
		return
	}

	if err := tx.Delete(&c).Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao remover custo")
		return
	}

	if err := RecalcularTotaisDoFrete(tx, c.FreteID); err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar totais do frete")
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao confirmar transação")
		return
	}

	utils.RespostaJSON(w, http.StatusOK, "Custo removido com sucesso", nil)
}

func aplicarAtualizacao(c *Custo, dto *AtualizarCustoDTO) {
	if dto.FreteID != nil {
		c.FreteID = *dto.FreteID
	}
	if dto.Tipo != nil {
		c.Tipo = *dto.Tipo
	}
	if dto.Descricao != nil {
		c.Descricao = *dto.Descricao
	}
	if dto.Valor != nil {
		c.Valor = *dto.Valor
	}
	if dto.Data != nil {
		c.Data = *dto.Data
	}
	if dto.Comprovante != nil {
		c.Comprovante = *dto.Comprovante
	}
	if dto.Observacoes != nil {
		c.Observacoes = *dto.Observacoes
	}
	if dto.Motorista != nil {
		c.Motorista = *dto.Motorista
	}
	if dto.Caminhao != nil {
		c.Caminhao = *dto.Caminhao
	}
	if dto.Rota != nil {
		c.Rota = *dto.Rota
	}
	if dto.Litros != nil {
		c.Litros = dto.Litros
	}
	if dto.TipoCombustivel != nil {
		c.TipoCombustivel = *dto.TipoCombustivel
	}
}
