package admin

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/backend"
)

func newTestAdmin(t *testing.T, backendHandler http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	adm := NewHandler(backend.New(srv.URL))

	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")
	r.GET("/admin", adm.ShowGate)
	r.POST("/admin/login", adm.Login)
	r.GET("/admin/products", adm.ListProducts)
	r.POST("/admin/products", adm.SaveProduct)
	r.POST("/admin/products/:id/delete", adm.DeleteProduct)
	r.GET("/admin/orders", adm.ListOrders)
	r.POST("/admin/orders/:id/status", adm.UpdateOrderStatus)

	return r
}

func doForm(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
