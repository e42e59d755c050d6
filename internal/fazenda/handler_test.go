package fazenda_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AgroLog/api-fretes/internal/custo"
	"github.com/AgroLog/api-fretes/internal/fazenda"
	"github.com/AgroLog/api-fretes/internal/frete"
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
	require.NoError(t, db.AutoMigrate(&fazenda.Fazenda{}, &frete.Frete{}, &custo.Custo{}))
	return db
}

func seedFazenda(t *testing.T, db *gorm.DB) *fazenda.Fazenda {
	t.Helper()
	f := fazenda.Fazenda{Nome: "Santa Luzia", Estado: "MT", Proprietario: "Carlos Mendes",
		Mercadoria: "Soja", Safra: "2026", PrecoPorTonelada: 180, PesoMedioSaca: 25,
		TotalToneladas: 10, FaturamentoTotal: 1800}
	require.NoError(t, db.Create(&f).Error)
	return &f
}

func TestCriarFazenda(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)

	body, _ := json.Marshal(map[string]interface{}{
		"fazenda":          "Boa Esperança",
		"estado":           "MT",
		"proprietario":     "Ana Souza",
		"mercadoria":       "Milho",
		"safra":            "2026",
		"precoPorTonelada": 95.0,
	})
	req := httptest.NewRequest(http.MethodPost, "/fazendas", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var f fazenda.Fazenda
	require.NoError(t, db.First(&f).Error)
	assert.Equal(t, "Boa Esperança", f.Nome)
	// peso médio da saca assume 25kg quando não informado
	assert.Equal(t, 25.0, f.PesoMedioSaca)
}

func TestCriarFazendaPayloadInvalido(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)

	body, _ := json.Marshal(map[string]interface{}{"fazenda": "X"})
	req := httptest.NewRequest(http.MethodPost, "/fazendas", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestObterFazendaComAgregados(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)
	faz := seedFazenda(t, db)

	f1 := frete.Frete{Codigo: "FRT-2026-001", Origem: "Sorriso-MT", Destino: "Rondonópolis-MT",
		MotoristaID: 1, MotoristaNome: "João", CaminhaoID: 1, CaminhaoPlaca: "ABC1D23",
		FazendaID: &faz.ID, Mercadoria: "Soja", DataFrete: "2026-08-10",
		QuantidadeSacas: 1000, Toneladas: 25, ValorPorTonelada: 180, Receita: 4500, Resultado: 4500}
	require.NoError(t, db.Create(&f1).Error)
	f2 := frete.Frete{Codigo: "FRT-2026-002", Origem: "Sorriso-MT", Destino: "Cuiabá-MT",
		MotoristaID: 2, MotoristaNome: "Maria", CaminhaoID: 1, CaminhaoPlaca: "ABC1D23",
		FazendaID: &faz.ID, Mercadoria: "Soja", DataFrete: "2026-08-20",
		QuantidadeSacas: 800, Toneladas: 20, ValorPorTonelada: 180, Receita: 3600, Resultado: 3600}
	require.NoError(t, db.Create(&f2).Error)

	require.NoError(t, db.Create(&custo.Custo{FreteID: f1.ID, Tipo: "combustivel", Descricao: "Diesel", Valor: 400, Data: "2026-08-10"}).Error)
	require.NoError(t, db.Create(&custo.Custo{FreteID: f2.ID, Tipo: "pedagio", Descricao: "Pedágio", Valor: 100, Data: "2026-08-20"}).Error)

	req := httptest.NewRequest(http.MethodGet, "/fazendas/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(faz.ID)})
	rec := httptest.NewRecorder()
	h.ObterPorID(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data fazenda.FazendaDetalheDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Data.TotalFretesRealizados)
	assert.Equal(t, 500.0, resp.Data.TotalCustosOperacionais)
	// lucro líquido parte do faturamento acumulado da fazenda
	assert.Equal(t, 1800.0-500.0, resp.Data.LucroLiquido)
	assert.Equal(t, "FRT-2026-002", resp.Data.UltimoFreteCodigo)
	assert.Equal(t, "2026-08-20", resp.Data.UltimoFreteData)
}

func TestIncrementarVolumeAditivo(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)
	faz := seedFazenda(t, db)

	incrementa := func(toneladas float64) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]interface{}{"toneladas": toneladas})
		req := httptest.NewRequest(http.MethodPost, "/fazendas/1/incrementar-volume", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(faz.ID)})
		rec := httptest.NewRecorder()
		h.IncrementarVolume(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, incrementa(5.5).Code)
	require.Equal(t, http.StatusOK, incrementa(4.5).Code)

	var atualizada fazenda.Fazenda
	require.NoError(t, db.First(&atualizada, faz.ID).Error)
	assert.Equal(t, 20.0, atualizada.TotalToneladas)
}

func TestIncrementarVolumeFazendaInexistente(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)

	body, _ := json.Marshal(map[string]interface{}{"toneladas": 5.0})
	req := httptest.NewRequest(http.MethodPost, "/fazendas/42/incrementar-volume", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.IncrementarVolume(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIncrementarVolumeNegativo(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)
	faz := seedFazenda(t, db)

	body, _ := json.Marshal(map[string]interface{}{"toneladas": -3.0})
	req := httptest.NewRequest(http.MethodPost, "/fazendas/1/incrementar-volume", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(faz.ID)})
	rec := httptest.NewRecorder()
	h.IncrementarVolume(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAtualizarFazendaInexistente(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)

	body, _ := json.Marshal(map[string]interface{}{"estado": "GO"})
	req := httptest.NewRequest(http.MethodPut, "/fazendas/42", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletarFazenda(t *testing.T) {
	db := setupDB(t)
	h := fazenda.NewHandler(db)
	faz := seedFazenda(t, db)

	req := httptest.NewRequest(http.MethodDelete, "/fazendas/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(faz.ID)})
	rec := httptest.NewRecorder()
	h.Deletar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var total int64
	require.NoError(t, db.Model(&fazenda.Fazenda{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}
