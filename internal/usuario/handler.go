package usuario

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroLog/api-fretes/internal/auth"
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

// Login valida credenciais e devolve um JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	u, err := h.Repository.BuscarPorEmail(h.DB, dto.Email)
	if err != nil || !u.Ativo || !utils.CheckSenha(u.SenhaHash, dto.Senha) {
		// mesma resposta para usuário inexistente, inativo ou senha errada
		utils.RespostaErro(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}

	token, err := auth.GerarToken(u.ID, u.Role)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}

	utils.RespostaJSON(w, http.StatusOK, "Login realizado com sucesso", map[string]interface{}{
		"token": token,
		"usuario": map[string]interface{}{
			"id":    u.ID,
			"nome":  u.Nome,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}

// Criar cadastra um novo usuário.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarUsuarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	senha := dto.Senha
	senhaGerada := ""
	if senha == "" {
		gerada, err := utils.GerarSenhaTemporaria()
		if err != nil {
			utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao gerar senha temporária")
			return
		}
		senhaGerada = gerada
		senha = senhaGerada
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao processar senha")
		return
	}

	u := Usuario{
		Nome:      dto.Nome,
		Email:     dto.Email,
		SenhaHash: hash,
		Role:      RoleOperador,
		Ativo:     true,
	}
	if dto.Role != "" {
		u.Role = dto.Role
	}

	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespostaErro(w, http.StatusConflict, "E-mail já cadastrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	data := map[string]interface{}{"id": u.ID, "email": u.Email}
	if senhaGerada != "" {
		data["senhaTemporaria"] = senhaGerada
	}
	utils.RespostaJSON(w, http.StatusCreated, "Usuário criado com sucesso", data)
}

// Listar retorna todos os usuários.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao listar usuários")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Usuários listados com sucesso", usuarios)
}

// ObterPorID retorna um usuário.
func (h *Handler) ObterPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter usuário")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Usuário carregado com sucesso", u)
}

// Atualizar altera campos de um usuário.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespostaErro(w, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao obter usuário")
		return
	}

	var dto AtualizarUsuarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.RespostaErroDetalhe(w, http.StatusBadRequest, "Dados inválidos", err.Error())
		return
	}

	if dto.Nome != nil {
		u.Nome = *dto.Nome
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Senha != nil {
		hash, err := utils.HashSenha(*dto.Senha)
		if err != nil {
			utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao processar senha")
			return
		}
		u.SenhaHash = hash
	}
	if dto.Role != nil {
		u.Role = *dto.Role
	}
	if dto.Ativo != nil {
		u.Ativo = *dto.Ativo
	}

	if err := h.Repository.Salvar(h.DB, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespostaErro(w, http.StatusConflict, "E-mail já cadastrado")
			return
		}
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Usuário atualizado com sucesso", u)
}

// Deletar remove um usuário.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespostaErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	afetadas, err := h.Repository.Deletar(h.DB, uint(id))
	if err != nil {
		utils.RespostaErro(w, http.StatusInternalServerError, "Erro ao remover usuário")
		return
	}
	if afetadas == 0 {
		utils.RespostaErro(w, http.StatusNotFound, "Usuário não encontrado")
		return
	}
	utils.RespostaJSON(w, http.StatusOK, "Usuário removido com sucesso", nil)
}
