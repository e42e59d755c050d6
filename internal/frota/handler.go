package frota

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroLog/api-fretes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarCaminhaoDTO struct {
	Placa               string  `json:"placa" validate:"required,min=7,max=8"`
	PlacaCarreta        string  `json:"placaCarreta"`
	Modelo              string  `json:"modelo" validate:"required,min=3"`
	AnoFabricacao       int     `json:"anoFabricacao" validate:"required,gt=1950"`
	CapacidadeToneladas float64 `json:"capacidadeToneladas" validate:"required,gt=0"`
	KmAtual             int64   `json:"kmAtual" validate:"omitempty,gte=0"`
	Status              string  `json:"status" validate:"omitempty,oneof=disponivel em_viagem manutencao"`
	TipoVeiculo         string  `json:"tipoVeiculo" validate:"required,oneof=TRUCADO TOCO CARRETA BITREM RODOTREM"`
	TipoCombustivel     string  `json:"tipoCombustivel" validate:"omitempty,oneof=DIESEL S10 ARLA OUTRO"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

// NewHandler cria um novo handler da frota
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Criar trata POST /caminhoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto criarCaminhaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	c := Caminhao{
		Placa:               dto.Placa,
		PlacaCarreta:        dto.PlacaCarreta,
		Modelo:              dto.Modelo,
		AnoFabricacao:       dto.AnoFabricacao,
		CapacidadeToneladas: dto.CapacidadeToneladas,
		KmAtual:             dto.KmAtual,
		Status:              StatusDisponivel,
		TipoVeiculo:         dto.TipoVeiculo,
		TipoCombustivel:     dto.TipoCombustivel,
	}
	if dto.Status != "" {
		c.Status = dto.Status
	}

	if err := h.Repository.Criar(&c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespostaErro(w, http.StatusConflict, "Placa já cadastrada")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao criar caminhão")
		return
	}
	utils.RespostaJSON(w, http.StatusCreated, "Caminhão criado com sucesso", map[string]interface{}{"id": c.ID})
}

// Listar trata GET /caminhoes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	caminhoes, err := h.Repository.ListarTodos()
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao listar frota")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Frota listada com sucesso", caminhoes)
}

// ObterPorID trata GET /caminhoes/{id}
func (h *Handler) ObterPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Caminhão não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter caminhão")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Caminhão carregado com sucesso", c)
}

// Atualizar trata PUT /caminhoes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Caminhão não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter caminhão")
		return
	}

	var dto struct {
		PlacaCarreta        *string  `json:"placaCarreta"`
		Modelo              *string  `json:"modelo" validate:"omitempty,min=3"`
		AnoFabricacao       *int     `json:"anoFabricacao" validate:"omitempty,gt=1950"`
		CapacidadeToneladas *float64 `json:"capacidadeToneladas" validate:"omitempty,gt=0"`
		KmAtual             *int64   `json:"kmAtual" validate:"omitempty,gte=0"`
		Status              *string  `json:"status" validate:"omitempty,oneof=disponivel em_viagem manutencao"`
		TipoCombustivel     *string  `json:"tipoCombustivel" validate:"omitempty,oneof=DIESEL S10 ARLA OUTRO"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	if dto.PlacaCarreta != nil {
		c.PlacaCarreta = *dto.PlacaCarreta
	}
	if dto.Modelo != nil {
		c.Modelo = *dto.Modelo
	}
	if dto.AnoFabricacao != nil {
		c.AnoFabricacao = *dto.AnoFabricacao
	}
	if dto.CapacidadeToneladas != nil {
		c.CapacidadeToneladas = *dto.CapacidadeToneladas
	}
	if dto.KmAtual != nil {
		c.KmAtual = *dto.KmAtual
	}
	if dto.Status != nil {
		c.Status = *dto.Status
	}
	if dto.TipoCombustivel != nil {
		c.TipoCombustivel = *dto.TipoCombustivel
	}

	if err := h.Repository.Salvar(c); err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar caminhão")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Caminhão atualizado com sucesso", c)
}

// Deletar trata DELETE /caminhoes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	afetadas, err := h.Repository.Deletar(uint(id))
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao remover caminhão")
		return
	}
	if afetadas == 0 {
		utils.RespostaErro(w, http.StatusNotFound, "Caminhão não encontrado")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Caminhão removido com sucesso", nil)
}
