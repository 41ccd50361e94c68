package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"aroma_front_end/internal/backend"
	"aroma_front_end/internal/cart"
)

const testCartID = "test-cart"

// newTestShop wires a Shop against a fake backend and an in-memory
// redis, with the real templates loaded.
func newTestShop(t *testing.T, backendHandler http.Handler) (*gin.Engine, *Shop) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	shop := NewShop(backend.New(srv.URL), cart.NewStore(client))

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	r.GET("/shop", shop.ShowShop)
	r.GET("/product", shop.ShowProduct)
	r.GET("/cart", shop.ShowCart)
	r.POST("/cart/add", shop.AddToCart)
	r.POST("/cart/increment", shop.IncrementItem)
	r.POST("/cart/decrement", shop.DecrementItem)
	r.POST("/cart/remove", shop.RemoveItem)
	r.POST("/checkout", shop.Checkout)
	r.GET("/api/stock", shop.StockLevels)

	return r, shop
}

func doRequest(r *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: cartCookie, Value: testCartID})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
