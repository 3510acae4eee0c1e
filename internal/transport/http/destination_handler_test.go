package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/catalog"
	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/service"
)

func newDestinationEcho(t *testing.T) *echo.Echo {
	t.Helper()
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded returned error: %v", err)
	}
	e := echo.New()
	RegisterDestinations(e, service.NewDestinationService(cat))
	return e
}

func TestParseCriteria(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations", nil)
	q := req.URL.Query()
	q.Set("search", "  bali  ")
	q.Set("category", "Beach")
	q.Set("price_min", "100")
	q.Set("price_max", "2000")
	q.Set("difficulty", "easy")
	q.Set("sort", "price")
	req.URL.RawQuery = q.Encode()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	criteria, err := parseCriteria(c)
	if err != nil {
		t.Fatalf("parseCriteria returned error: %v", err)
	}

	if criteria.Search != "bali" {
		t.Fatalf("expected search 'bali', got %q", criteria.Search)
	}
	if criteria.Category != "beach" {
		t.Fatalf("expected category 'beach', got %q", criteria.Category)
	}
	if criteria.PriceMin != 100 || criteria.PriceMax != 2000 {
		t.Fatalf("expected price range [100, 2000], got [%v, %v]", criteria.PriceMin, criteria.PriceMax)
	}
	if criteria.Difficulty != "easy" {
		t.Fatalf("expected difficulty 'easy', got %q", criteria.Difficulty)
	}
	if criteria.Sort != domain.SortByPrice {
		t.Fatalf("expected price sort, got %q", criteria.Sort)
	}
}

func TestParseCriteriaDefaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	criteria, err := parseCriteria(c)
	if err != nil {
		t.Fatalf("parseCriteria returned error: %v", err)
	}
	if criteria != domain.DefaultCriteria() {
		t.Fatalf("expected defaults, got %+v", criteria)
	}
}

func TestParseCriteriaRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"unknown sort", "sort=popularity"},
		{"unknown category", "category=volcano"},
		{"unknown difficulty", "difficulty=extreme"},
		{"non-numeric price", "price_min=abc"},
		{"negative price", "price_min=-1"},
		{"inverted range", "price_min=500&price_max=100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations?"+tc.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if _, err := parseCriteria(c); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestListDestinationsBeachByPrice(t *testing.T) {
	e := newDestinationEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations?category=beach&sort=price", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Destinations []domain.Destination `json:"destinations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Destinations) != 2 {
		t.Fatalf("expected 2 beach destinations, got %d", len(body.Destinations))
	}
	if body.Destinations[0].Name != "Bali" || body.Destinations[1].Name != "Santorini" {
		t.Fatalf("expected [Bali, Santorini], got [%s, %s]",
			body.Destinations[0].Name, body.Destinations[1].Name)
	}
}

func TestListDestinationsRejectsUnknownSort(t *testing.T) {
	e := newDestinationEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations?sort=magic", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort, got %d", rec.Code)
	}
}

func TestGetDestinationNotFound(t *testing.T) {
	e := newDestinationEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error envelope, got %v", body)
	}
}

func TestGetDestinationDetail(t *testing.T) {
	e := newDestinationEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations/4", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Destination domain.Destination `json:"destination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Destination.Name != "Swiss Alps" {
		t.Fatalf("expected Swiss Alps, got %q", body.Destination.Name)
	}
}

func TestFeaturedAndTrendingRoutes(t *testing.T) {
	e := newDestinationEcho(t)

	for _, path := range []string{"/api/v1/destinations/featured", "/api/v1/destinations/trending"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}
