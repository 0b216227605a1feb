package cotizacion

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/NexoCRM/api-crm/internal/auth"
	"github.com/NexoCRM/api-crm/internal/deal"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func nuevoHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	svc, db := nuevoServicio(t)
	return &Handler{Service: svc}, db
}

func peticion(t *testing.T, usuarioID uint, metodo, ruta string, cuerpo any, vars map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if cuerpo != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(cuerpo))
	}
	r := httptest.NewRequest(metodo, ruta, &body)
	r = r.WithContext(context.WithValue(r.Context(), auth.UsuarioIDKey, usuarioID))
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder, destino any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(destino))
}

func TestHandlerCrear(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)

	cuerpo := map[string]any{
		"dealId": d.ID,
		"items": []map[string]any{
			{"description": "Desarrollo", "quantity": "2", "unitPrice": "100"},
			{"description": "Hosting", "quantity": "1", "unitPrice": "50"},
		},
		"validUntil": "2026-04-10",
		"notes":      "válida 30 días",
	}

	w := httptest.NewRecorder()
	h.Crear(w, peticion(t, 1, "POST", "/cotizaciones", cuerpo, nil))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Numero   string `json:"quoteNumber"`
		Estado   string `json:"status"`
		Subtotal string `json:"subtotal"`
		Total    string `json:"total"`
		Notas    string `json:"notes"`
	}
	decodificar(t, w, &resp)
	assert.Equal(t, "COT-2026-001", resp.Numero)
	assert.Equal(t, "BORRADOR", resp.Estado)
	assert.Equal(t, "250", resp.Subtotal)
	assert.Equal(t, "290", resp.Total)
	assert.Equal(t, "válida 30 días", resp.Notas)
}

func TestHandlerCrearSinDeal(t *testing.T) {
	h, _ := nuevoHandler(t)

	w := httptest.NewRecorder()
	h.Crear(w, peticion(t, 1, "POST", "/cotizaciones", map[string]any{"items": []any{}}, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCrearSinItems(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)

	w := httptest.NewRecorder()
	h.Crear(w, peticion(t, 1, "POST", "/cotizaciones", map[string]any{"dealId": d.ID}, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCrearDealAjeno(t *testing.T) {
	h, db := nuevoHandler(t)
	ajeno := crearDeal(t, db, 2)

	cuerpo := map[string]any{
		"dealId": ajeno.ID,
		"items":  []map[string]any{{"description": "X", "quantity": "1", "unitPrice": "10"}},
	}
	w := httptest.NewRecorder()
	h.Crear(w, peticion(t, 1, "POST", "/cotizaciones", cuerpo, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerCambiarEstado(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)
	c, err := h.Service.Crear(1, CrearRequest{DealID: d.ID, Items: itemsDePrueba()})
	require.NoError(t, err)

	vars := map[string]string{"id": itoa(c.ID)}
	w := httptest.NewRecorder()
	h.CambiarEstado(w, peticion(t, 1, "PATCH", "/cotizaciones/1", map[string]string{"status": "ENVIADA"}, vars))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Estado    string  `json:"status"`
		EnviadaEn *string `json:"sentAt"`
	}
	decodificar(t, w, &resp)
	assert.Equal(t, "ENVIADA", resp.Estado)
	assert.NotNil(t, resp.EnviadaEn)

	assert.Equal(t, deal.EtapaPropuestaEnviada, recargarDeal(t, db, d.ID).Etapa)
}

func TestHandlerCambiarEstadoTransicionInvalida(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)
	c, err := h.Service.Crear(1, CrearRequest{DealID: d.ID, Items: itemsDePrueba()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.CambiarEstado(w, peticion(t, 1, "PATCH", "/cotizaciones/1",
		map[string]string{"status": "ACEPTADA"}, map[string]string{"id": itoa(c.ID)}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlerCambiarEstadoDesconocido(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)
	c, err := h.Service.Crear(1, CrearRequest{DealID: d.ID, Items: itemsDePrueba()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.CambiarEstado(w, peticion(t, 1, "PATCH", "/cotizaciones/1",
		map[string]string{"status": "pendiente"}, map[string]string{"id": itoa(c.ID)}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerActualizarEnviada(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)
	c, err := h.Service.Crear(1, CrearRequest{DealID: d.ID, Items: itemsDePrueba()})
	require.NoError(t, err)
	_, err = h.Service.CambiarEstado(1, c.ID, EstadoEnviada)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Actualizar(w, peticion(t, 1, "PUT", "/cotizaciones/1",
		map[string]any{"notes": "tarde"}, map[string]string{"id": itoa(c.ID)}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlerEliminarEnviada(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)
	c, err := h.Service.Crear(1, CrearRequest{DealID: d.ID, Items: itemsDePrueba()})
	require.NoError(t, err)
	_, err = h.Service.CambiarEstado(1, c.ID, EstadoEnviada)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Eliminar(w, peticion(t, 1, "DELETE", "/cotizaciones/1", nil, map[string]string{"id": itoa(c.ID)}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlerBuscarPorIDNoEncontrada(t *testing.T) {
	h, _ := nuevoHandler(t)

	w := httptest.NewRecorder()
	h.BuscarPorID(w, peticion(t, 1, "GET", "/cotizaciones/99", nil, map[string]string{"id": "99"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	decodificar(t, w, &resp)
	// Mensaje genérico: no revela si la cotización existe para otro usuario.
	assert.Equal(t, ErrNoEncontrada.Error(), resp["error"])
}

func TestHandlerListarConFiltroInvalido(t *testing.T) {
	h, _ := nuevoHandler(t)

	w := httptest.NewRecorder()
	h.Listar(w, peticion(t, 1, "GET", "/cotizaciones?status=INVENTADO", nil, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerListar(t *testing.T) {
	h, db := nuevoHandler(t)
	d := crearDeal(t, db, 1)
	_, err := h.Service.Crear(1, CrearRequest{DealID: d.ID, Items: itemsDePrueba()})
	require.NoError(t, err)
	_, err = h.Service.Crear(1, CrearRequest{DealID: d.ID, Items: itemsDePrueba()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Listar(w, peticion(t, 1, "GET", "/cotizaciones", nil, nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	decodificar(t, w, &list)
	assert.Len(t, list, 2)
}
