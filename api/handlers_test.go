/*
handlers_test.go - Tests for the HTTP API

Tests for:
- Holiday listing, state scoping and type filters
- Error mapping (range → 404, everything else → 500)
- Business-day summaries
- CORS headers
*/
package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/holiday-engine/feriados"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestHandler() *Handler {
	return NewHandler(feriados.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(NewRouter(newTestHandler(), RouterOptions{}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func countType(hs []HolidayDTO, typ string) int {
	n := 0
	for _, h := range hs {
		if h.Type == typ {
			n++
		}
	}
	return n
}

// =============================================================================
// HOLIDAY TESTS
// =============================================================================

func TestListHolidays_2020InOrder(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/api/feriados/v1/2020")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	holidays := decode[[]HolidayDTO](t, resp)
	require.Len(t, holidays, 12)
	assert.Equal(t, HolidayDTO{Date: "2020-01-01", Name: "Confraternização mundial", Type: "national"}, holidays[0])
	assert.Equal(t, HolidayDTO{Date: "2020-02-25", Name: "Carnaval", Type: "national"}, holidays[1])
	assert.Equal(t, HolidayDTO{Date: "2020-12-25", Name: "Natal", Type: "national"}, holidays[11])
	for i := 1; i < len(holidays); i++ {
		assert.LessOrEqual(t, holidays[i-1].Date, holidays[i].Date)
	}
}

func TestListHolidays_SameDay2019(t *testing.T) {
	srv := newTestServer(t)

	holidays := decode[[]HolidayDTO](t, get(t, srv.URL+"/api/feriados/v1/2019"))

	assert.Len(t, holidays, 12)
	assert.Contains(t, holidays, HolidayDTO{Date: "2019-04-21", Name: "Páscoa", Type: "national"})
	assert.Contains(t, holidays, HolidayDTO{Date: "2019-04-21", Name: "Tiradentes", Type: "national"})
}

func TestListHolidays_RioDeJaneiro(t *testing.T) {
	srv := newTestServer(t)

	// National + state, state code case-insensitive
	all := decode[[]HolidayDTO](t, get(t, srv.URL+"/api/feriados/v1/2024/RJ"))
	stateCount := countType(all, "state")
	assert.Greater(t, stateCount, 0)
	assert.Greater(t, len(all), stateCount)

	// State only
	stateOnly := decode[[]HolidayDTO](t, get(t, srv.URL+"/api/feriados/v1/2024/rj?tipo=estadual"))
	assert.Greater(t, len(stateOnly), 0)
	assert.Equal(t, len(stateOnly), countType(stateOnly, "state"))

	// ?type= is accepted too
	national := decode[[]HolidayDTO](t, get(t, srv.URL+"/api/feriados/v1/2024/rj?type=national"))
	assert.Len(t, national, 13)
}

func TestListHolidays_StateFilterWithoutState(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/api/feriados/v1/2024?tipo=estadual")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestListStates(t *testing.T) {
	srv := newTestServer(t)

	states := decode[[]string](t, get(t, srv.URL+"/api/feriados/v1/estados"))
	assert.Len(t, states, 27)
	assert.Contains(t, states, "rj")
}

// =============================================================================
// ERROR MAPPING TESTS
// =============================================================================

func TestListHolidays_YearOutOfRange(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/api/feriados/v1/3000")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "feriados_range_error",
		"message": "Ano fora do intervalo suportado entre 1900 e 2199."
	}`, string(body))
}

func TestListHolidays_InvalidYear(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/api/feriados/v1/erro")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "InternalError",
		"type": "feriados_error",
		"message": "Erro ao calcular feriados."
	}`, string(body))
}

func TestRecoverer_PanicBecomesInternalError(t *testing.T) {
	h := newTestHandler()
	panicking := h.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	panicking.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feriados/v1/2024", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"name":"InternalError","type":"feriados_error","message":"Erro ao calcular feriados."}`, rec.Body.String())
}

// =============================================================================
// BUSINESS DAY TESTS
// =============================================================================

func TestGetBusinessDays(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/api/dias-uteis/v1/2024/rj")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"year": 2024,
		"state": "rj",
		"days": 366,
		"weekend_days": 104,
		"holidays_on_weekdays": 9,
		"business_days": 253,
		"business_day_ratio": "0.6913"
	}`, string(body))
}

func TestGetBusinessDays_YearOutOfRange(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/api/dias-uteis/v1/1899")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// CORS TESTS
// =============================================================================

func TestCORS_AllowsAnyOriginByDefault(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/feriados/v1/2020", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestHandler(), RouterOptions{
		AllowedOrigins: []string{"https://allowed.example"},
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/feriados/v1/2020", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://other.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
