package motorista

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroLog/api-fretes/internal/notificacao"
	"github.com/AgroLog/api-fretes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarMotoristaDTO struct {
	Nome         string `json:"nome" validate:"required,min=3"`
	CPF          string `json:"cpf" validate:"required,min=11,max=14"`
	Telefone     string `json:"telefone" validate:"required,min=10"`
	Email        string `json:"email" validate:"omitempty,email"`
	CNH          string `json:"cnh" validate:"required,min=5"`
	CNHCategoria string `json:"cnhCategoria" validate:"required"`
	CNHValidade  string `json:"cnhValidade" validate:"omitempty,datetime=2006-01-02"`
	Status       string `json:"status" validate:"omitempty,oneof=ativo inativo ferias"`
	Tipo         string `json:"tipo" validate:"required,oneof=proprio terceirizado"`
	DataAdmissao string `json:"dataAdmissao" validate:"omitempty,datetime=2006-01-02"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Criar trata POST /motoristas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto criarMotoristaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	m := Motorista{
		Nome:         dto.Nome,
		CPF:          dto.CPF,
		Telefone:     dto.Telefone,
		Email:        dto.Email,
		CNH:          dto.CNH,
		CNHCategoria: dto.CNHCategoria,
		CNHValidade:  dto.CNHValidade,
		Status:       StatusAtivo,
		Tipo:         dto.Tipo,
		DataAdmissao: dto.DataAdmissao,
	}
	if dto.Status != "" {
		m.Status = dto.Status
	}

	if err := h.Repository.Criar(h.DB, &m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			go notificacao.EnviarAlertaCPFDuplicado(dto.CPF)
			utils.RespostaErro(w, http.StatusConflict, "CPF já cadastrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao criar motorista")
		return
	}
	utils.RespostaJSON(w, http.StatusCreated, "Motorista criado com sucesso", map[string]interface{}{"id": m.ID})
}

// Listar trata GET /motoristas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	motoristas, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao listar motoristas")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Motoristas listados com sucesso", motoristas)
}

// ObterPorID trata GET /motoristas/{id}
func (h *Handler) ObterPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Motorista não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter motorista")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Motorista carregado com sucesso", m)
}

// Atualizar trata PUT /motoristas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Motorista não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter motorista")
		return
	}

	var dto struct {
		Nome         *string `json:"nome" validate:"omitempty,min=3"`
		Telefone     *string `json:"telefone" validate:"omitempty,min=10"`
		Email        *string `json:"email" validate:"omitempty,email"`
		CNH          *string `json:"cnh" validate:"omitempty,min=5"`
		CNHCategoria *string `json:"cnhCategoria"`
		CNHValidade  *string `json:"cnhValidade" validate:"omitempty,datetime=2006-01-02"`
		Status       *string `json:"status" validate:"omitempty,oneof=ativo inativo ferias"`
		Tipo         *string `json:"tipo" validate:"omitempty,oneof=proprio terceirizado"`
		DataAdmissao *string `json:"dataAdmissao" validate:"omitempty,datetime=2006-01-02"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	if dto.Nome != nil {
		m.Nome = *dto.Nome
	}
	if dto.Telefone != nil {
		m.Telefone = *dto.Telefone
	}
	if dto.Email != nil {
		m.Email = *dto.Email
	}
	if dto.CNH != nil {
		m.CNH = *dto.CNH
	}
	if dto.CNHCategoria != nil {
		m.CNHCategoria = *dto.CNHCategoria
	}
	if dto.CNHValidade != nil {
		m.CNHValidade = *dto.CNHValidade
	}
	if dto.Status != nil {
		m.Status = *dto.Status
	}
	if dto.Tipo != nil {
		m.Tipo = *dto.Tipo
	}
	if dto.DataAdmissao != nil {
		m.DataAdmissao = *dto.DataAdmissao
	}

	if err := h.Repository.Salvar(h.DB, m); err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar motorista")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Motorista atualizado com sucesso", m)
}

// Deletar trata DELETE /motoristas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	afetadas, err := h.Repository.Deletar(h.DB, uint(id))
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao remover motorista")
		return
	}
	if afetadas == 0 {
		utils.RespostaErro(w, http.StatusNotFound, "Motorista não encontrado")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Motorista removido com sucesso", nil)
}
