package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkfel/schedule1-reverse-search/config"
	"github.com/sparkfel/schedule1-reverse-search/search"
)

func testServer() *Server {
	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Catalog = "interactions.json"
	cfg.Search.TimeoutSeconds = 30
	cfg.Search.LongTimeoutSeconds = 120
	cfg.Search.MaxDepth = 15

	cat := search.Catalog{
		"Cuke":      {Name: "Cuke", BaseEffect: "Energizing", Price: 2},
		"Motor Oil": {Name: "Motor Oil", BaseEffect: "Slippery", Price: 6},
	}
	return New(cfg, cat)
}

func TestBuildRequest_AppliesDefaults(t *testing.T) {
	s := testServer()

	req, err := s.buildRequest(&SearchRequest{
		Effects: []string{"Energizing"},
		Mode:    "cost",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, req.MinDepth)
	assert.Equal(t, 15, req.MaxDepth)
	assert.Equal(t, 30*time.Second, req.Timeout)
	assert.Equal(t, search.SkipSelfTarget, req.Replacement)
}

func TestBuildRequest_LongTimeoutForFourOrMoreEffects(t *testing.T) {
	s := testServer()

	req, err := s.buildRequest(&SearchRequest{
		Effects: []string{"A", "B", "C", "D"},
		Mode:    "cost",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 120*time.Second, req.Timeout)
}

func TestBuildRequest_ExplicitTimeoutWins(t *testing.T) {
	s := testServer()

	req, err := s.buildRequest(&SearchRequest{
		Effects:        []string{"A", "B", "C", "D"},
		Mode:           "profit",
		TimeoutSeconds: 7,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, req.Timeout)
}

func TestBuildRequest_RejectsBadMode(t *testing.T) {
	s := testServer()

	_, err := s.buildRequest(&SearchRequest{Mode: "speed"}, nil)

	assert.ErrorContains(t, err, "invalid request")
}

func TestBuildRequest_RejectsUnknownBaseProduct(t *testing.T) {
	s := testServer()

	_, err := s.buildRequest(&SearchRequest{Mode: "cost", BaseProduct: "Oregano"}, nil)

	assert.ErrorContains(t, err, "unknown base product")
}

func TestHandleSearch_FindsRecipe(t *testing.T) {
	s := testServer()
	body, _ := json.Marshal(SearchRequest{
		Effects:        []string{"Energizing"},
		Mode:           "cost",
		MaxDepth:       3,
		TimeoutSeconds: 5,
	})

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var result SearchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Found)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, RecipeStep{Name: "Cuke", Price: 2}, result.Steps[0])
	assert.Equal(t, 2, result.Cost)
	assert.NotEmpty(t, result.ID)
	assert.Len(t, result.Products, len(search.BaseProducts))
	// Street markup applies to the quoted prices.
	assert.InDelta(t, result.Products[0].FinalPrice*1.6, result.Products[0].MarkupPrice, 1e-9)
}

func TestHandleSearch_QuotesSelectedBaseProduct(t *testing.T) {
	s := testServer()
	body, _ := json.Marshal(SearchRequest{
		Effects:        []string{"Energizing"},
		Mode:           "cost",
		BaseProduct:    "Meth",
		MaxDepth:       3,
		TimeoutSeconds: 5,
	})

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var result SearchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.True(t, result.Found)
	require.NotNil(t, result.SelectedProduct)
	assert.Equal(t, "Meth", result.SelectedProduct.Name)
	// Energizing multiplies Meth's 80 base by 1.22; the recipe costs 2.
	assert.InDelta(t, 80*1.22, result.SelectedProduct.FinalPrice, 1e-9)
	assert.InDelta(t, 80*1.22-2, result.SelectedProduct.Profit, 1e-9)
}

func TestHandleSearch_NoSolutionIsNotAnError(t *testing.T) {
	s := testServer()
	body, _ := json.Marshal(SearchRequest{
		Effects:        []string{"Zombifying"},
		Mode:           "cost",
		MaxDepth:       2,
		TimeoutSeconds: 5,
	})

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var result SearchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.False(t, result.Found)
	assert.Empty(t, result.Steps)
}

func TestHandleSearch_BadJSON(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader([]byte("{"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_InvalidRequest(t *testing.T) {
	s := testServer()
	body, _ := json.Marshal(SearchRequest{Mode: "speed"})

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEffects(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/effects", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Effects []string `json:"effects"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, []string{"Energizing", "Slippery"}, payload.Effects)
}

func TestHandleProducts(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Products []search.BaseProduct `json:"products"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.Len(t, payload.Products, 8)
	assert.Equal(t, "OG Kush", payload.Products[0].Name)
}
