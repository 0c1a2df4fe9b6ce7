package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sparkfel/schedule1-reverse-search/catalog"
	"github.com/sparkfel/schedule1-reverse-search/search"
)

// SearchRequest is what the frontend form submits, over HTTP or as the
// first WebSocket frame.
type SearchRequest struct {
	Effects []string `json:"effects"`
	Mode    string   `json:"mode" validate:"required,oneof=cost profit"`
	// BaseProduct, when set, picks which product's quote the result
	// surfaces as selectedProduct.
	BaseProduct        string   `json:"baseProduct,omitempty"`
	MinDepth           int      `json:"minDepth" validate:"min=0"`
	MaxDepth           int      `json:"maxDepth" validate:"min=0"`
	TimeoutSeconds     int      `json:"timeoutSeconds" validate:"min=0"`
	AllowedIngredients []string `json:"allowedIngredients,omitempty"`
	// ReplaceOwnBase applies an ingredient's replacement rules even to the
	// base effect the same application just added.
	ReplaceOwnBase bool `json:"replaceOwnBase,omitempty"`
}

// RecipeStep is one ingredient application of the returned recipe.
type RecipeStep struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// EffectDetail pairs a final effect with its price multiplier.
type EffectDetail struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// ProductQuote is the profitability of one base product for the recipe's
// final effects. Markup figures apply the street 1.6x rule.
type ProductQuote struct {
	Name         string  `json:"name"`
	FinalPrice   float64 `json:"finalPrice"`
	Profit       float64 `json:"profit"`
	MarkupPrice  float64 `json:"markupPrice"`
	MarkupProfit float64 `json:"markupProfit"`
}

// SearchResult is the outcome of one search invocation. Found=false means
// no recipe satisfied the request within the depth and time bounds.
type SearchResult struct {
	ID          string         `json:"id"`
	Found       bool           `json:"found"`
	Steps       []RecipeStep   `json:"steps,omitempty"`
	Effects     []EffectDetail `json:"effects,omitempty"`
	Cost        int            `json:"cost"`
	Profit      float64        `json:"profit"`
	BestProduct string         `json:"bestProduct,omitempty"`
	// SelectedProduct is the quote for the product the request named, when
	// it named one.
	SelectedProduct *ProductQuote  `json:"selectedProduct,omitempty"`
	Products        []ProductQuote `json:"products,omitempty"`
	ElapsedMs       int64          `json:"elapsedMs"`
}

// streetMarkup is the resale multiplier the original calculator displays
// next to every quote.
const streetMarkup = 1.6

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON format", http.StatusBadRequest)
		return
	}

	engineReq, err := s.buildRequest(&req, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	started := time.Now()
	sol, err := search.Search(engineReq)
	if err != nil {
		status := http.StatusInternalServerError
		if isBadRequest(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, s.buildResult(uuid.NewString(), sol, req.BaseProduct, time.Since(started)))
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	writeJSON(w, map[string]any{"effects": catalog.AllEffects(s.catalog)})
}

func (s *Server) handleIngredients(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	ingredients := make([]search.Ingredient, 0, len(s.catalog))
	for _, name := range s.catalog.Names() {
		ingredients = append(ingredients, s.catalog[name])
	}
	writeJSON(w, map[string]any{"ingredients": ingredients})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	writeJSON(w, map[string]any{"products": search.BaseProducts})
}

// buildRequest validates a form request and turns it into an engine
// request. Unset depth and timeout fields take the configured defaults;
// the timeout default stretches for four or more required effects, the
// way the original calculator warns it will.
func (s *Server) buildRequest(req *SearchRequest, progress search.ProgressFunc) (search.Request, error) {
	if err := s.validate.Struct(req); err != nil {
		return search.Request{}, fmt.Errorf("invalid request: %w", err)
	}
	if req.BaseProduct != "" {
		if _, err := search.ProductByName(req.BaseProduct); err != nil {
			return search.Request{}, fmt.Errorf("invalid request: %w", err)
		}
	}

	minDepth := req.MinDepth
	if minDepth == 0 {
		minDepth = 1
	}
	maxDepth := req.MaxDepth
	if maxDepth == 0 {
		maxDepth = s.cfg.Search.MaxDepth
	}

	timeout := time.Duration(req.TimeoutSeconds) * time.Second
	if timeout == 0 {
		seconds := s.cfg.Search.TimeoutSeconds
		if len(req.Effects) >= 4 {
			seconds = s.cfg.Search.LongTimeoutSeconds
		}
		timeout = time.Duration(seconds) * time.Second
	}

	replacement := search.SkipSelfTarget
	if req.ReplaceOwnBase {
		replacement = search.ReplaceAlways
	}

	return search.Request{
		RequiredEffects:    req.Effects,
		Catalog:            s.catalog,
		Mode:               search.Mode(req.Mode),
		Progress:           progress,
		Timeout:            timeout,
		MinDepth:           minDepth,
		MaxDepth:           maxDepth,
		AllowedIngredients: req.AllowedIngredients,
		Replacement:        replacement,
	}, nil
}

// buildResult renders a solution (or its absence) for the client,
// including the per-product profit table of the original report. When the
// request named a base product, its quote is also surfaced on its own.
func (s *Server) buildResult(id string, sol *search.Solution, baseProduct string, elapsed time.Duration) SearchResult {
	result := SearchResult{ID: id, ElapsedMs: elapsed.Milliseconds()}
	if sol == nil {
		return result
	}

	result.Found = true
	result.Cost = sol.Cost
	result.Profit = sol.Profit

	for _, name := range sol.Path {
		result.Steps = append(result.Steps, RecipeStep{
			Name:  name,
			Price: s.catalog[name].Price,
		})
	}
	for _, e := range sol.Effects.Sorted() {
		result.Effects = append(result.Effects, EffectDetail{
			Name:       e,
			Multiplier: search.EffectMultipliers[e],
		})
	}

	bestProduct, _ := search.BestProfit(sol.Effects, sol.Cost)
	result.BestProduct = bestProduct.Name

	for _, p := range search.BaseProducts {
		finalPrice := search.FinalPrice(p, sol.Effects)
		profit := finalPrice - float64(sol.Cost)
		quote := ProductQuote{
			Name:         p.Name,
			FinalPrice:   finalPrice,
			Profit:       profit,
			MarkupPrice:  finalPrice * streetMarkup,
			MarkupProfit: profit * streetMarkup,
		}
		result.Products = append(result.Products, quote)
		if p.Name == baseProduct {
			selected := quote
			result.SelectedProduct = &selected
		}
	}
	return result
}

func allowCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// isBadRequest reports whether a search error is a caller mistake rather
// than a server fault.
func isBadRequest(err error) bool {
	return errors.Is(err, search.ErrEmptyCatalog) ||
		errors.Is(err, search.ErrDepthRange) ||
		errors.Is(err, search.ErrUnknownMode) ||
		errors.Is(err, search.ErrUnknownIngredient) ||
		errors.Is(err, search.ErrUnknownProduct)
}
