package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/kvstore"
	"github.com/MorseWayne/mercado_shop/internal/repo"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

func newFavoritesHandlerFixture() *FavoritesHandler {
	favoritesRepo := repo.NewFavoritesRepository(kvstore.NewMemoryStore(), zap.NewNop())
	favorites := service.NewFavoritesService(favoritesRepo, zap.NewNop())
	return NewFavoritesHandler(favorites, newFakeCatalogService(), zap.NewNop())
}

// assertFavoritesPayload 校验响应体为 {favorites, total} 结构并返回收藏数
func assertFavoritesPayload(t *testing.T, rec *httptest.ResponseRecorder) int {
	t.Helper()
	body := decodeEnvelope(t, rec)
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want object", body.Data)
	}
	if _, ok := data["favorites"]; !ok {
		t.Fatal("payload missing favorites field")
	}
	total, ok := data["total"].(float64)
	if !ok {
		t.Fatalf("payload total = %T, want number", data["total"])
	}
	return int(total)
}

func TestFavoritesHandler_AddFavorite(t *testing.T) {
	h := newFavoritesHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"product_id":1}`))
	rec := httptest.NewRecorder()
	h.AddFavorite(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if total := assertFavoritesPayload(t, rec); total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestFavoritesHandler_AddFavorite_UnknownProduct(t *testing.T) {
	h := newFavoritesHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"product_id":42}`))
	rec := httptest.NewRecorder()
	h.AddFavorite(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestFavoritesHandler_ListAndRemove_SamePayloadShape(t *testing.T) {
	h := newFavoritesHandlerFixture()

	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"product_id":1}`))
	h.AddFavorite(httptest.NewRecorder(), addReq)

	listRec := httptest.NewRecorder()
	h.ListFavorites(listRec, httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil))
	if total := assertFavoritesPayload(t, listRec); total != 1 {
		t.Errorf("list total = %d, want 1", total)
	}

	removeRec := httptest.NewRecorder()
	h.RemoveFavorite(removeRec, httptest.NewRequest(http.MethodDelete, "/api/v1/favorites/1", nil))
	if total := assertFavoritesPayload(t, removeRec); total != 0 {
		t.Errorf("remove total = %d, want 0", total)
	}
}
