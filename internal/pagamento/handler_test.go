package pagamento

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/AgroLog/api-fretes/internal/motorista"
	"github.com/AgroLog/api-fretes/internal/sequencial"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&motorista.Motorista{}, &Pagamento{}))
	require.NoError(t, sequencial.Migrate(db))
	return db
}

func seedMotorista(t *testing.T, db *gorm.DB) *motorista.Motorista {
	t.Helper()
	m := motorista.Motorista{Nome: "João da Silva", CPF: "111.111.111-11",
		Telefone: "65 99999-0001", CNH: "12345678900", CNHCategoria: "E",
		Status: motorista.StatusAtivo, Tipo: "proprio"}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func payloadCriacao(motoristaID uint) map[string]interface{} {
	return map[string]interface{}{
		"motoristaId":      motoristaID,
		"motoristaNome":    "João da Silva",
		"periodoFretes":    "01/08/2026 a 15/08/2026",
		"quantidadeFretes": 4,
		"totalToneladas":   120.0,
		"valorPorTonelada": 35.0,
		"valorTotal":       4200.0,
		"dataPagamento":    "2026-08-20",
		"metodoPagamento":  "pix",
	}
}

func postCriar(t *testing.T, h *Handler, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/pagamentos", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)
	return rec
}

func TestCriarPagamentoGeraCodigoSequencial(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	m := seedMotorista(t, db)

	rec := postCriar(t, h, payloadCriacao(m.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var p Pagamento
	require.NoError(t, db.First(&p).Error)
	assert.Equal(t, fmt.Sprintf("PAG-%d-001", time.Now().Year()), p.Codigo)
	assert.Equal(t, StatusPendente, p.Status)

	rec = postCriar(t, h, payloadCriacao(m.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var segundo Pagamento
	require.NoError(t, db.Order("id DESC").First(&segundo).Error)
	assert.Equal(t, fmt.Sprintf("PAG-%d-002", time.Now().Year()), segundo.Codigo)
}

func TestCriarPagamentoMotoristaInexistente(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	rec := postCriar(t, h, payloadCriacao(999))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var total int64
	require.NoError(t, db.Model(&Pagamento{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestCriarPagamentoMetodoInvalido(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	m := seedMotorista(t, db)

	payload := payloadCriacao(m.ID)
	payload["metodoPagamento"] = "cheque"
	rec := postCriar(t, h, payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListarPagamentosPorStatus(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	m := seedMotorista(t, db)

	require.Equal(t, http.StatusCreated, postCriar(t, h, payloadCriacao(m.ID)).Code)

	payload := payloadCriacao(m.ID)
	payload["status"] = StatusPago
	require.Equal(t, http.StatusCreated, postCriar(t, h, payload).Code)

	req := httptest.NewRequest(http.MethodGet, "/pagamentos?status=pago", nil)
	rec := httptest.NewRecorder()
	h.Listar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []Pagamento `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, StatusPago, resp.Data[0].Status)
}
