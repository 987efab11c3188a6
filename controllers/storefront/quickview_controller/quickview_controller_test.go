package quickview_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Violet-Essentials/violet-storefront-backend/catalog"
	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/Violet-Essentials/violet-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(t *testing.T) (*gin.Engine, *catalog.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := catalog.NewStore(nil)
	Init(s, services.NewQuickViewService())

	router := gin.New()
	router.POST("/store/quickview", OpenQuickView)
	router.GET("/store/quickview/:id", GetQuickView)
	router.PUT("/store/quickview/:id/size", SelectSize)
	router.POST("/store/quickview/:id/cart", AddToCart)
	router.DELETE("/store/quickview/:id", DismissQuickView)
	return router, s
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeSnapshot(t *testing.T, body []byte) models.QuickViewSnapshot {
	t.Helper()
	var resp struct {
		Data models.QuickViewSnapshot `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Data
}

func TestQuickViewFlow(t *testing.T) {
	router, store := newTestRouter(t)
	product := store.Add(models.Product{Name: "Slip Dress", Brand: "Violet Essentials", Price: 1299, Category: "Dresses"})

	// Open
	w := doJSON(router, http.MethodPost, "/store/quickview", `{"product_id":"`+product.ID.String()+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("open status = %d, body %s", w.Code, w.Body.String())
	}
	snap := decodeSnapshot(t, w.Body.Bytes())
	if snap.State != models.QuickViewOpen || snap.CanAddToCart {
		t.Fatalf("unexpected initial snapshot %+v", snap)
	}

	// Add to cart before a size → 409, state unchanged
	w = doJSON(router, http.MethodPost, "/store/quickview/"+snap.ID+"/cart", "")
	if w.Code != http.StatusConflict {
		t.Errorf("sizeless add-to-cart status = %d, want 409", w.Code)
	}

	// Select size
	w = doJSON(router, http.MethodPut, "/store/quickview/"+snap.ID+"/size", `{"size":"M"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("size status = %d", w.Code)
	}
	if got := decodeSnapshot(t, w.Body.Bytes()); !got.CanAddToCart {
		t.Error("add-to-cart must unlock once a size is selected")
	}

	// Add to cart
	w = doJSON(router, http.MethodPost, "/store/quickview/"+snap.ID+"/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("cart status = %d", w.Code)
	}
	if got := decodeSnapshot(t, w.Body.Bytes()); got.State != models.QuickViewConfirming {
		t.Errorf("state = %q, want confirming", got.State)
	}

	// Dismiss cancels the pending auto-close
	w = doJSON(router, http.MethodDelete, "/store/quickview/"+snap.ID, "")
	if w.Code != http.StatusOK {
		t.Errorf("dismiss status = %d", w.Code)
	}
	w = doJSON(router, http.MethodGet, "/store/quickview/"+snap.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("dismissed session still readable: %d", w.Code)
	}
}

func TestOpenQuickView_Errors(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/store/quickview", `{"product_id":"nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", w.Code)
	}

	w = doJSON(router, http.MethodPost, "/store/quickview", `{"product_id":"`+uuid.Must(uuid.NewV7()).String()+`"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product status = %d, want 404", w.Code)
	}
}

func TestSelectSize_Errors(t *testing.T) {
	router, store := newTestRouter(t)
	product := store.Add(models.Product{Name: "Coat", Brand: "Mira Atelier", Price: 3450, Category: "Outerwear"})

	w := doJSON(router, http.MethodPost, "/store/quickview", `{"product_id":"`+product.ID.String()+`"}`)
	snap := decodeSnapshot(t, w.Body.Bytes())

	w = doJSON(router, http.MethodPut, "/store/quickview/"+snap.ID+"/size", `{"size":"XXXL"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid size status = %d, want 400", w.Code)
	}

	w = doJSON(router, http.MethodPut, "/store/quickview/missing/size", `{"size":"M"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", w.Code)
	}
}
