package utils

import (
	"encoding/json"
	"net/http"
)

// Resposta é o envelope padrão de todas as rotas da API.
type Resposta struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespostaJSON escreve uma resposta de sucesso com o status informado.
func RespostaJSON(w http.ResponseWriter, status int, mensagem string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Resposta{
		Success: true,
		Message: mensagem,
		Data:    data,
	})
}

// RespostaErro escreve uma resposta de falha sem detalhe adicional.
func RespostaErro(w http.ResponseWriter, status int, mensagem string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Resposta{
		Success: false,
		Message: mensagem,
	})
}

// RespostaErroDetalhe escreve uma resposta de falha com o campo error
// preenchido (usado para erros de validação agregados).
func RespostaErroDetalhe(w http.ResponseWriter, status int, mensagem, detalhe string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Resposta{
		Success: false,
		Message: mensagem,
		Error:   detalhe,
	})
}
