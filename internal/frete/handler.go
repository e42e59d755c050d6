package frete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroLog/api-fretes/internal/fazenda"
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

// NewHandler cria um novo handler de fretes
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Criar trata POST /fretes.
//
// A criação roda em uma única transação: verificação da fazenda (quando
// informada), emissão do código sequencial, insert do frete e propagação
// aditiva dos totais para a fazenda. Qualquer falha desfaz tudo.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarFreteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	defer r.Body.Close()

	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	// Receita derivada quando não informada; custos sempre nascem zerados
	// (entram depois pelo fluxo de custos).
	receita := dto.Toneladas * dto.ValorPorTonelada
	if dto.Receita != nil {
		receita = *dto.Receita
	}

	f := Frete{
		Origem:           dto.Origem,
		Destino:          dto.Destino,
		MotoristaID:      dto.MotoristaID,
		MotoristaNome:    dto.MotoristaNome,
		CaminhaoID:       dto.CaminhaoID,
		CaminhaoPlaca:    dto.CaminhaoPlaca,
		FazendaID:        dto.FazendaID,
		FazendaNome:      dto.FazendaNome,
		Mercadoria:       dto.Mercadoria,
		Variedade:        dto.Variedade,
		DataFrete:        dto.DataFrete,
		QuantidadeSacas:  dto.QuantidadeSacas,
		Toneladas:        dto.Toneladas,
		ValorPorTonelada: dto.ValorPorTonelada,
		Receita:          receita,
		Custos:           0,
		Resultado:        receita,
		PagamentoID:      dto.PagamentoID,
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

	if dto.FazendaID != nil {
		var faz fazenda.Fazenda
		if err := tx.Select("id").First(&faz, *dto.FazendaID).Error; err != nil {
			_ = tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespostaErro(w, http.StatusNotFound, "Fazenda não encontrada")
				return
			}
			utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao verificar fazenda")
			return
		}
	}

	codigo, err := sequencial.ProximoCodigo(tx, "FRT")
	if err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao gerar código do frete")
		return
	}
	f.Codigo = codigo

	if err := tx.Create(&f).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespostaErro(w, http.StatusConflict, "Código de frete já cadastrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao criar frete")
		return
	}

	if dto.FazendaID != nil {
		// Incrementos emitidos como expressão SQL: o banco aplica cada um
		// atomicamente, sem ler-modificar-gravar na aplicação.
		err := tx.Model(&fazenda.Fazenda{}).Where("id = ?", *dto.FazendaID).
			Updates(map[string]interface{}{
				"total_sacas_carregadas": gorm.Expr("total_sacas_carregadas + ?", dto.QuantidadeSacas),
				"total_toneladas":        gorm.Expr("total_toneladas + ?", dto.Toneladas),
				"faturamento_total":      gorm.Expr("faturamento_total + ?", receita),
				"ultimo_frete":           dto.DataFrete,
			}).Error
		if err != nil {
			_ = tx.Rollback()
			utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar totais da fazenda")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao confirmar transação")
		return
	}

	utils.RespostaJSON(w, http.StatusCreated, "Frete criado com sucesso", map[string]interface{}{
		"id":     f.ID,
		"codigo": f.Codigo,
	})
}

// Listar trata GET /fretes com filtros opcionais por data, motorista e
// fazenda.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtros := FiltrosListagem{
		DataInicio: r.URL.Query().Get("data_inicio"),
		DataFim:    r.URL.Query().Get("data_fim"),
	}
	if v := r.URL.Query().Get("motorista_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespostaErro(w, http.StatusBadRequest, "motorista_id inválido")
			return
		}
		filtros.MotoristaID = uint(id)
	}
	if v := r.URL.Query().Get("fazenda_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespostaErro(w, http.StatusBadRequest, "fazenda_id inválido")
			return
		}
		filtros.FazendaID = uint(id)
	}

	fretes, err := h.Repository.Listar(filtros)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao listar fretes")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Fretes listados com sucesso", fretes)
}

// ObterPorID trata GET /fretes/{id}
func (h *Handler) ObterPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	f, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Frete não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter frete")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Frete carregado com sucesso", f)
}

// Atualizar trata PUT /fretes/{id} (atualização parcial).
//
// A receita é recalculada quando toneladas ou valor por tonelada mudam sem
// receita explícita; o resultado é recalculado sempre que não vem no
// payload. A propagação para a fazenda acontece só na criação — os
// relatórios de fazenda rederivam custos direto da origem.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dto AtualizarFreteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	f, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Frete não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter frete")
		return
	}

	aplicarAtualizacao(f, &dto)

	if err := h.Repository.Salvar(f); err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar frete")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Frete atualizado com sucesso", f)
}

// Deletar trata DELETE /fretes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	afetadas, err := h.Repository.Deletar(uint(id))
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao remover frete")
		return
	}
	if afetadas == 0 {
		utils.RespostaErro(w, http.StatusNotFound, "Frete não encontrado")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Frete removido com sucesso", nil)
}

// aplicarAtualizacao mescla o payload parcial no frete carregado e
// recalcula os campos derivados sobre os valores já mesclados.
func aplicarAtualizacao(f *Frete, dto *AtualizarFreteDTO) {
	if dto.Origem != nil {
		f.Origem = *dto.Origem
	}
	if dto.Destino != nil {
		f.Destino = *dto.Destino
	}
	if dto.MotoristaID != nil {
		f.MotoristaID = *dto.MotoristaID
	}
	if dto.MotoristaNome != nil {
		f.MotoristaNome = *dto.MotoristaNome
	}
	if dto.CaminhaoID != nil {
		f.CaminhaoID = *dto.CaminhaoID
	}
	if dto.CaminhaoPlaca != nil {
		f.CaminhaoPlaca = *dto.CaminhaoPlaca
	}
	if dto.FazendaID != nil {
		f.FazendaID = dto.FazendaID
	}
	if dto.FazendaNome != nil {
		f.FazendaNome = *dto.FazendaNome
	}
	if dto.Mercadoria != nil {
		f.Mercadoria = *dto.Mercadoria
	}
	if dto.Variedade != nil {
		f.Variedade = *dto.Variedade
	}
	if dto.DataFrete != nil {
		f.DataFrete = *dto.DataFrete
	}
	if dto.QuantidadeSacas != nil {
		f.QuantidadeSacas = *dto.QuantidadeSacas
	}

	tonelagemMudou := dto.Toneladas != nil || dto.ValorPorTonelada != nil
	if dto.Toneladas != nil {
		f.Toneladas = *dto.Toneladas
	}
	if dto.ValorPorTonelada != nil {
		f.ValorPorTonelada = *dto.ValorPorTonelada
	}

	switch {
	case dto.Receita != nil:
		f.Receita = *dto.Receita
	case tonelagemMudou:
		f.Receita = f.Toneladas * f.ValorPorTonelada
	}

	if dto.Resultado != nil {
		f.Resultado = *dto.Resultado
	} else {
		f.Resultado = f.Receita - f.Custos
	}

	if dto.PagamentoID != nil {
		f.PagamentoID = dto.PagamentoID
	}
}
