package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/boxpack-service/internal/domain/dto"
	"github.com/guttosm/boxpack-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	packing := service.NewPackingService()
	handler := NewHandler(packing, nil) // nil: box catalogs from MongoDB disabled
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodePackResponse(t *testing.T, w *httptest.ResponseRecorder) dto.PackResponse {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)

	dataBytes, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var packResp dto.PackResponse
	require.NoError(t, json.Unmarshal(dataBytes, &packResp))
	return packResp
}

func TestPackOrder(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "valid request with inline box",
			body: `{
				"items": [{"description": "cube", "width": 5, "length": 5, "depth": 5, "weight": 10, "quantity": 2}],
				"boxes": [{"reference": "crate", "inner_width": 10, "inner_length": 10, "inner_depth": 10, "empty_weight": 100, "max_weight": 5000}]
			}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				packResp := decodePackResponse(t, w)
				require.Len(t, packResp.PackedBoxes, 1)
				assert.Equal(t, "crate", packResp.PackedBoxes[0].Reference)
				assert.Equal(t, 2, packResp.ItemsPacked)
				assert.Len(t, packResp.PackedBoxes[0].Items, 2)
				assert.Empty(t, packResp.Unpacked)

				// Every placed item carries explicit coordinates.
				for _, item := range packResp.PackedBoxes[0].Items {
					assert.GreaterOrEqual(t, item.X, 0)
					assert.LessOrEqual(t, item.X+item.Width, 10)
				}
			},
		},
		{
			name: "falls back to default catalog when no boxes given",
			body: `{"items": [{"description": "mug", "width": 90, "length": 90, "depth": 100, "weight": 350}]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				packResp := decodePackResponse(t, w)
				require.Len(t, packResp.PackedBoxes, 1)
				assert.Equal(t, 1, packResp.ItemsPacked)
			},
		},
		{
			name: "oversized item is returned unpacked, not an error",
			body: `{
				"items": [{"description": "sofa", "width": 2000, "length": 800, "depth": 900, "weight": 35000}]
			}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				packResp := decodePackResponse(t, w)
				assert.Empty(t, packResp.PackedBoxes)
				require.Len(t, packResp.Unpacked, 1)
				assert.Equal(t, "sofa", packResp.Unpacked[0].Description)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing items",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty items",
			body:           `{"items": []}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero dimension",
			body:           `{"items": [{"description": "bad", "width": 0, "length": 5, "depth": 5, "weight": 1}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative box quantity",
			body: `{
				"items": [{"description": "cube", "width": 5, "length": 5, "depth": 5, "weight": 1}],
				"boxes": [{"reference": "crate", "inner_width": 10, "inner_length": 10, "inner_depth": 10, "empty_weight": 0, "max_weight": 100, "quantity": -1}]
			}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/pack", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			if tt.expectedStatus != http.StatusOK {
				var errResp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error)
			}
		})
	}
}

func TestPackOrder_WeightLimitScenario(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/api/pack", `{
		"items": [{"description": "cube", "width": 5, "length": 5, "depth": 5, "weight": 1, "quantity": 3}],
		"boxes": [{"reference": "weak", "inner_width": 10, "inner_length": 10, "inner_depth": 10, "empty_weight": 0, "max_weight": 2, "quantity": 1}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	packResp := decodePackResponse(t, w)
	require.Len(t, packResp.PackedBoxes, 1)
	assert.Len(t, packResp.PackedBoxes[0].Items, 2, "weight limit holds two cubes")
	assert.Len(t, packResp.Unpacked, 1)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth(t *testing.T) {
	packing := service.NewPackingService()
	handler := NewHandler(packing, nil)
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]bool{"valid-key": true}
	router := NewRouter(handler, NewHealthHandler(), cfg)

	body := `{"items": [{"description": "cube", "width": 5, "length": 5, "depth": 5, "weight": 1}]}`

	w := postJSON(router, "/api/pack", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing key rejected")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pack", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "wrong")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong key rejected")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/pack", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "valid-key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "valid key accepted")
}
