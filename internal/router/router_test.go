package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// newServer wires the whole conversion pipeline against a stub rates upstream.
func newServer(t *testing.T, upstream http.HandlerFunc, opts ...Option) *httptest.Server {
	t.Helper()

	rates := httptest.NewServer(upstream)
	t.Cleanup(rates.Close)

	log := logger.NewNop()
	facade := facades.NewDailyRatesHTTPFacade(rates.Client(), rates.URL, log,
		facades.WithRetryDelay(time.Millisecond),
	)
	svc := services.NewConvertService(facade, log)

	srv := httptest.NewServer(New(log, handlers.NewConvertHandler(svc, log), opts...))
	t.Cleanup(srv.Close)

	return srv
}

func stubRates(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

type response struct {
	code        int
	contentType string
	body        string
}

func get(t *testing.T, srv *httptest.Server, method, target string) response {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+target, nil)
	require.NoError(t, err)

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return response{
		code:        res.StatusCode,
		contentType: res.Header.Get("Content-Type"),
		body:        string(body),
	}
}

func TestRouter(t *testing.T) {
	srv := newServer(t, stubRates(`{"Valute":{"USD":{"Value":75.0}}}`))

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantBody map[string]interface{}
	}{
		{
			name:     "round trip",
			method:   http.MethodGet,
			target:   "/convert?currency=usd&value=2",
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{"value": 150.0},
		},
		{
			name:     "no query",
			method:   http.MethodGet,
			target:   "/convert",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"reason": "params not specified"},
		},
		{
			name:     "unknown currency",
			method:   http.MethodGet,
			target:   "/convert?currency=xyz&value=2",
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]interface{}{"reason": "no information on the rate of this currency"},
		},
		{
			name:     "unknown path",
			method:   http.MethodGet,
			target:   "/unknown",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown path with query",
			method:   http.MethodGet,
			target:   "/unknown?currency=usd&value=2",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "root path",
			method:   http.MethodGet,
			target:   "/",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "nested path is not matched",
			method:   http.MethodGet,
			target:   "/convert/usd",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "swagger disabled by default",
			method:   http.MethodGet,
			target:   "/swagger/doc.json",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "method not allowed",
			method:   http.MethodPost,
			target:   "/convert?currency=usd&value=2",
			wantCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := get(t, srv, tt.method, tt.target)

			require.Equal(t, tt.wantCode, res.code)

			if tt.wantBody == nil {
				assert.Empty(t, res.body)
				assert.Empty(t, res.contentType)
				return
			}

			assert.Equal(t, "application/json", res.contentType)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(res.body), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRouter_UpstreamDown(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	res := get(t, srv, http.MethodGet, "/convert?currency=usd&value=2")

	require.Equal(t, http.StatusInternalServerError, res.code)
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.body), &body))
	assert.Equal(t, "exchanges server error HTTP Error 502: Bad Gateway, attempts 4", body["reason"])
}

func TestRouter_Idempotent(t *testing.T) {
	srv := newServer(t, stubRates(`{"Valute":{"USD":{"Value":75.0}}}`))

	first := get(t, srv, http.MethodGet, "/convert?currency=usd&value=2")
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, get(t, srv, http.MethodGet, "/convert?currency=usd&value=2"))
	}
}

func TestRouter_Swagger(t *testing.T) {
	srv := newServer(t, stubRates(`{}`), WithSwagger("/swagger/doc.json"))

	res := get(t, srv, http.MethodGet, "/swagger/doc.json")

	require.Equal(t, http.StatusOK, res.code)
	assert.Contains(t, res.body, `"/convert"`)
}
