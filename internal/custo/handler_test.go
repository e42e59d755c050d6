package custo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&frete.Frete{}, &Custo{}))
	return db
}

func seedFrete(t *testing.T, db *gorm.DB, codigo string, receita float64) *frete.Frete {
	t.Helper()
	f := frete.Frete{Codigo: codigo, Origem: "Sorriso-MT", Destino: "Rondonópolis-MT",
		MotoristaID: 1, MotoristaNome: "João da Silva", CaminhaoID: 1, CaminhaoPlaca: "ABC1D23",
		Mercadoria: "Soja", DataFrete: "2026-08-15", QuantidadeSacas: 1480,
		Toneladas: 37, ValorPorTonelada: 180, Receita: receita, Custos: 0, Resultado: receita}
	require.NoError(t, db.Create(&f).Error)
	return &f
}

func postCusto(t *testing.T, h *Handler, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/custos", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)
	return rec
}

func TestCriarCustoRederivaTotaisDoFrete(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	f := seedFrete(t, db, "FRT-2026-001", 6660)

	rec := postCusto(t, h, map[string]interface{}{
		"freteId": f.ID, "tipo": "combustivel", "descricao": "Diesel posto BR",
		"valor": 200.0, "data": "2026-08-15", "litros": 120.0, "tipoCombustivel": "diesel",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var pai frete.Frete
	require.NoError(t, db.First(&pai, f.ID).Error)
	assert.Equal(t, 200.0, pai.Custos)
	assert.Equal(t, 6460.0, pai.Resultado)

	// segundo custo soma, não substitui
	rec = postCusto(t, h, map[string]interface{}{
		"freteId": f.ID, "tipo": "pedagio", "descricao": "Pedágio BR-163",
		"valor": 300.0, "data": "2026-08-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, db.First(&pai, f.ID).Error)
	assert.Equal(t, 500.0, pai.Custos)
	assert.Equal(t, 6160.0, pai.Resultado)
}

func TestCriarCustoFreteInexistente(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	rec := postCusto(t, h, map[string]interface{}{
		"freteId": 999, "tipo": "outros", "descricao": "Despesa avulsa",
		"valor": 50.0, "data": "2026-08-15",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var total int64
	require.NoError(t, db.Model(&Custo{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestCriarCustoPayloadInvalido(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	f := seedFrete(t, db, "FRT-2026-001", 6660)

	rec := postCusto(t, h, map[string]interface{}{
		"freteId": f.ID, "tipo": "gasolina_errada", "descricao": "x", "valor": -10.0, "data": "15/08/2026",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAtualizarCustoRederivaTotais(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	f := seedFrete(t, db, "FRT-2026-001", 6660)

	c := Custo{FreteID: f.ID, Tipo: "combustivel", Descricao: "Diesel", Valor: 200, Data: "2026-08-15"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, RecalcularTotaisDoFrete(db, f.ID))

	body, _ := json.Marshal(map[string]interface{}{"valor": 350.0})
	req := httptest.NewRequest(http.MethodPut, "/custos/1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(c.ID)})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pai frete.Frete
	require.NoError(t, db.First(&pai, f.ID).Error)
	assert.Equal(t, 350.0, pai.Custos)
	assert.Equal(t, 6310.0, pai.Resultado)
}

func TestAtualizarCustoMudandoDeFrete(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	f1 := seedFrete(t, db, "FRT-2026-001", 6660)
	f2 := seedFrete(t, db, "FRT-2026-002", 4500)

	c := Custo{FreteID: f1.ID, Tipo: "manutencao", Descricao: "Troca de pneu", Valor: 800, Data: "2026-08-15"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, RecalcularTotaisDoFrete(db, f1.ID))

	body, _ := json.Marshal(map[string]interface{}{"freteId": f2.ID})
	req := httptest.NewRequest(http.MethodPut, "/custos/1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(c.ID)})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// os dois fretes envolvidos são rederivados
	var pai frete.Frete
	require.NoError(t, db.First(&pai, f1.ID).Error)
	assert.Equal(t, 0.0, pai.Custos)
	assert.Equal(t, 6660.0, pai.Resultado)

	var pai2 frete.Frete
	require.NoError(t, db.First(&pai2, f2.ID).Error)
	assert.Equal(t, 800.0, pai2.Custos)
	assert.Equal(t, 3700.0, pai2.Resultado)
}

func TestAtualizarCustoParaFreteInexistente(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	f := seedFrete(t, db, "FRT-2026-001", 6660)

	c := Custo{FreteID: f.ID, Tipo: "outros", Descricao: "Despesa avulsa", Valor: 100, Data: "2026-08-15"}
	require.NoError(t, db.Create(&c).Error)

	body, _ := json.Marshal(map[string]interface{}{"freteId": 999})
	req := httptest.NewRequest(http.MethodPut, "/custos/1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(c.ID)})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// custo permanece no frete original
	var mantido Custo
	require.NoError(t, db.First(&mantido, c.ID).Error)
	assert.Equal(t, f.ID, mantido.FreteID)
}

func TestDeletarCustoRederivaTotais(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	f := seedFrete(t, db, "FRT-2026-001", 6660)

	c := Custo{FreteID: f.ID, Tipo: "pedagio", Descricao: "Pedágio BR-163", Valor: 300, Data: "2026-08-15"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, RecalcularTotaisDoFrete(db, f.ID))

	req := httptest.NewRequest(http.MethodDelete, "/custos/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(c.ID)})
	rec := httptest.NewRecorder()
	h.Deletar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pai frete.Frete
	require.NoError(t, db.First(&pai, f.ID).Error)
	assert.Equal(t, 0.0, pai.Custos)
	assert.Equal(t, 6660.0, pai.Resultado)
}

func TestDeletarCustoInexistente(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)

	req := httptest.NewRequest(http.MethodDelete, "/custos/42", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.Deletar(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
