package frete

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/AgroLog/api-fretes/internal/fazenda"
	"github.com/AgroLog/api-fretes/internal/sequencial"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
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
	require.NoError(t, db.AutoMigrate(&fazenda.Fazenda{}, &Frete{}))
	require.NoError(t, sequencial.Migrate(db))
	return db
}

func payloadCriacao() map[string]interface{} {
	return map[string]interface{}{
		"origem":           "Sorriso-MT",
		"destino":          "Rondonópolis-MT",
		"motoristaId":      1,
		"motoristaNome":    "João da Silva",
		"caminhaoId":       1,
		"caminhaoPlaca":    "ABC1D23",
		"mercadoria":       "Soja",
		"dataFrete":        "2026-08-15",
		"quantidadeSacas":  1480,
		"toneladas":        37.0,
		"valorPorTonelada": 180.0,
	}
}

func postCriar(t *testing.T, h *Handler, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/fretes", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)
	return rec
}

func TestCriarFreteDerivaReceitaEResultado(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	rec := postCriar(t, h, payloadCriacao())
	require.Equal(t, http.StatusCreated, rec.Code)

	var f Frete
	require.NoError(t, db.First(&f).Error)
	assert.Equal(t, fmt.Sprintf("FRT-%d-001", time.Now().Year()), f.Codigo)
	assert.Equal(t, 37.0*180.0, f.Receita)
	assert.Equal(t, 0.0, f.Custos)
	assert.Equal(t, f.Receita, f.Resultado)
}

func TestCriarFreteComReceitaExplicita(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	payload := payloadCriacao()
	payload["receita"] = 7000.0
	rec := postCriar(t, h, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var f Frete
	require.NoError(t, db.First(&f).Error)
	assert.Equal(t, 7000.0, f.Receita)
	assert.Equal(t, 7000.0, f.Resultado)
}

func TestCriarFretePropagaTotaisDaFazenda(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	faz := fazenda.Fazenda{Nome: "Santa Luzia", Estado: "MT", Proprietario: "Carlos", Mercadoria: "Soja", Safra: "2026", PrecoPorTonelada: 180, PesoMedioSaca: 25}
	require.NoError(t, db.Create(&faz).Error)

	payload := payloadCriacao()
	payload["fazendaId"] = faz.ID
	payload["fazendaNome"] = faz.Nome
	require.Equal(t, http.StatusCreated, postCriar(t, h, payload).Code)

	payload = payloadCriacao()
	payload["fazendaId"] = faz.ID
	payload["dataFrete"] = "2026-08-20"
	payload["quantidadeSacas"] = 1000
	payload["toneladas"] = 25.0
	require.Equal(t, http.StatusCreated, postCriar(t, h, payload).Code)

	var atualizada fazenda.Fazenda
	require.NoError(t, db.First(&atualizada, faz.ID).Error)
	assert.Equal(t, int64(2480), atualizada.TotalSacasCarregadas)
	assert.Equal(t, 62.0, atualizada.TotalToneladas)
	assert.Equal(t, 37.0*180.0+25.0*180.0, atualizada.FaturamentoTotal)
	assert.Equal(t, "2026-08-20", atualizada.UltimoFrete)
}

func TestCriarFreteFazendaInexistente(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	payload := payloadCriacao()
	payload["fazendaId"] = 999
	rec := postCriar(t, h, payload)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// rollback: nem o frete nem o número de sequência ficam para trás
	var total int64
	require.NoError(t, db.Model(&Frete{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
	require.NoError(t, db.Model(&sequencial.Sequencia{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestCriarFretePayloadInvalido(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	payload := payloadCriacao()
	delete(payload, "origem")
	payload["toneladas"] = -5.0
	rec := postCriar(t, h, payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var total int64
	require.NoError(t, db.Model(&Frete{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestAtualizarFreteRecalculaDerivados(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	f := Frete{Codigo: "FRT-2026-001", Origem: "Sorriso-MT", Destino: "Rondonópolis-MT",
		MotoristaID: 1, MotoristaNome: "João da Silva", CaminhaoID: 1, CaminhaoPlaca: "ABC1D23",
		Mercadoria: "Soja", DataFrete: "2026-08-15", QuantidadeSacas: 1480,
		Toneladas: 37, ValorPorTonelada: 180, Receita: 6660, Custos: 500, Resultado: 6160}
	require.NoError(t, db.Create(&f).Error)

	body, _ := json.Marshal(map[string]interface{}{"toneladas": 40.0})
	req := httptest.NewRequest(http.MethodPut, "/fretes/1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(f.ID)})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var atualizado Frete
	require.NoError(t, db.First(&atualizado, f.ID).Error)
	assert.Equal(t, 40.0*180.0, atualizado.Receita)
	assert.Equal(t, 40.0*180.0-500.0, atualizado.Resultado)
}

func TestAtualizarFreteReceitaExplicitaNaoERecalculada(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	f := Frete{Codigo: "FRT-2026-001", Origem: "Sorriso-MT", Destino: "Rondonópolis-MT",
		MotoristaID: 1, MotoristaNome: "João da Silva", CaminhaoID: 1, CaminhaoPlaca: "ABC1D23",
		Mercadoria: "Soja", DataFrete: "2026-08-15", QuantidadeSacas: 1480,
		Toneladas: 37, ValorPorTonelada: 180, Receita: 6660, Custos: 0, Resultado: 6660}
	require.NoError(t, db.Create(&f).Error)

	body, _ := json.Marshal(map[string]interface{}{"toneladas": 40.0, "receita": 8000.0})
	req := httptest.NewRequest(http.MethodPut, "/fretes/1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(f.ID)})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var atualizado Frete
	require.NoError(t, db.First(&atualizado, f.ID).Error)
	assert.Equal(t, 8000.0, atualizado.Receita)
	assert.Equal(t, 8000.0, atualizado.Resultado)
}

func TestAtualizarFreteInexistente(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	body, _ := json.Marshal(map[string]interface{}{"origem": "Lucas do Rio Verde-MT"})
	req := httptest.NewRequest(http.MethodPut, "/fretes/42", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletarFreteInexistente(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	req := httptest.NewRequest(http.MethodDelete, "/fretes/42", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.Deletar(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListarFretesFiltraPorMotorista(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	fretes := []Frete{
		{Codigo: "FRT-2026-001", Origem: "Sorriso-MT", Destino: "Rondonópolis-MT", MotoristaID: 1, MotoristaNome: "João", CaminhaoID: 1, CaminhaoPlaca: "ABC1D23", Mercadoria: "Soja", DataFrete: "2026-08-10", QuantidadeSacas: 1000, Toneladas: 25, ValorPorTonelada: 180, Receita: 4500, Resultado: 4500},
		{Codigo: "FRT-2026-002", Origem: "Sorriso-MT", Destino: "Cuiabá-MT", MotoristaID: 2, MotoristaNome: "Maria", CaminhaoID: 1, CaminhaoPlaca: "ABC1D23", Mercadoria: "Soja", DataFrete: "2026-08-12", QuantidadeSacas: 800, Toneladas: 20, ValorPorTonelada: 180, Receita: 3600, Resultado: 3600},
	}
	for i := range fretes {
		require.NoError(t, db.Create(&fretes[i]).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/fretes?motorista_id=2", nil)
	rec := httptest.NewRecorder()
	h.Listar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []Frete `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "FRT-2026-002", resp.Data[0].Codigo)
}
