package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aroma_front_end/internal/models"
)

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"p1","name":"Lavender","price":15,"stock":3},
			{"_id":"p2","name":"Peppermint","price":12.5,"description":"cool","image":"/img/pep.png"}
		]`))
	}))
	defer srv.Close()

	products, err := New(srv.URL).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, 3, products[0].Stock)
	assert.Equal(t, "15.00", products[0].PriceDisplay())

	assert.Equal(t, "12.50", products[1].PriceDisplay())
	assert.Equal(t, 0, products[1].Stock)
	assert.Equal(t, models.PlaceholderImage, models.Product{}.ImageOrPlaceholder())
}

func TestProducts_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Products(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestProduct_FetchesSingleResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/p1", r.URL.Path)
		w.Write([]byte(`{"_id":"p1","name":"Lavender","price":15,"stock":3}`))
	}))
	defer srv.Close()

	product, err := New(srv.URL).Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Lavender", product.Name)
}

func TestCreateCheckoutSession(t *testing.T) {
	var received struct {
		Items []models.CartItem `json:"items"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create-checkout-session", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"url":"https://pay.example/s1"}`))
	}))
	defer srv.Close()

	items := []models.CartItem{
		{Product: models.Product{ID: "a", Name: "Lavender"}, Quantity: 2},
	}
	url, err := New(srv.URL).CreateCheckoutSession(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/s1", url)

	require.Len(t, received.Items, 1)
	assert.Equal(t, "a", received.Items[0].ID)
	assert.Equal(t, 2, received.Items[0].Quantity)
}

func TestCreateCheckoutSession_ErrorShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"stock changed"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateCheckoutSession(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no url")
}

func TestOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/orders", r.URL.Path)
		w.Write([]byte(`[{
			"_id":"o1","status":"paid","amount_total":1500,
			"createdAt":"2026-08-30T12:00:00Z",
			"items":[{"name":"Lavender","price":15,"quantity":1}]
		}]`))
	}))
	defer srv.Close()

	orders, err := New(srv.URL).Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "15.00", orders[0].TotalDisplay())
	assert.Equal(t, "—", orders[0].EmailOrDash())
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Lavender", orders[0].Items[0].Name)
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/orders/o1", r.URL.Path)

		var body struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "shipped", body.Status)

		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateOrderStatus(context.Background(), "o1", "shipped")
	assert.NoError(t, err)
}

func TestUpdateOrderStatus_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateOrderStatus(context.Background(), "o1", "shipped")
	assert.ErrorIs(t, err, ErrUpdateRejected)
}

func TestAdminLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/login", r.URL.Path)

		var body struct {
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body.Password != "sesame" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	assert.NoError(t, client.AdminLogin(context.Background(), "sesame"))
	assert.ErrorIs(t, client.AdminLogin(context.Background(), "wrong"), ErrLoginRejected)
}

func TestCreateProduct_MultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Lavender", r.FormValue("name"))
		assert.Equal(t, "15.00", r.FormValue("price"))
		assert.Equal(t, "7", r.FormValue("stock"))

		w.Write([]byte(`{"_id":"p1"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).CreateProduct(context.Background(), ProductForm{
		Name:  "Lavender",
		Price: "15.00",
		Stock: "7",
	})
	assert.NoError(t, err)
}

func TestUpdateProduct_UsesPut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/p1", r.URL.Path)
		w.Write([]byte(`{"_id":"p1"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateProduct(context.Background(), "p1", ProductForm{Name: "Lavender"})
	assert.NoError(t, err)
}

func TestDeleteProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/p1", r.URL.Path)
		w.Write([]byte(`{"deleted":true}`))
	}))
	defer srv.Close()

	assert.NoError(t, New(srv.URL).DeleteProduct(context.Background(), "p1"))
}
