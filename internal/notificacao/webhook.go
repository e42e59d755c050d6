package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaCPFDuplicado avisa o webhook configurado que houve tentativa
// de cadastro com CPF já existente. Sem WEBHOOK_ALERTA_URL definida o
// alerta é ignorado silenciosamente.
func EnviarAlertaCPFDuplicado(cpf string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem": "Alerta: tentativa de cadastro de motorista com CPF já existente",
		"cpf":      cpf,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
