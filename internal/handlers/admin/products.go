package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/backend"
	"aroma_front_end/internal/handlers"
)

// ListProducts renders the product management page: the full list plus
// the create/edit form. ?edit=<id> pre-fills the form from the
// single-product endpoint.
func (h *Handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.Backend.Products(ctx)
	if err != nil {
		log.Printf("❌ Error loading products: %v", err)
	}

	data := gin.H{
		"Products": products,
		"Alert":    c.Query("alert"),
	}

	if id := c.Query("edit"); id != "" {
		product, err := h.Backend.Product(ctx, id)
		if err != nil {
			log.Printf("❌ Error loading product %s: %v", id, err)
		} else {
			data["Editing"] = product
		}
	}

	c.HTML(http.StatusOK, "admin_products.html", data)
}

// SaveProduct submits the form: an empty id means create (POST), a
// tracked id means update (PUT). Either way the list is fully reloaded
// afterwards; there is no partial patch.
func (h *Handler) SaveProduct(c *gin.Context) {
	ctx := c.Request.Context()

	form := backend.ProductForm{
		Name:        c.PostForm("name"),
		Price:       c.PostForm("price"),
		Description: c.PostForm("description"),
		Image:       c.PostForm("image"),
		Stock:       c.PostForm("stock"),
	}

	var err error
	if id := c.PostForm("id"); id == "" {
		err = h.Backend.CreateProduct(ctx, form)
	} else {
		err = h.Backend.UpdateProduct(ctx, id, form)
	}

	if err != nil {
		log.Printf("❌ Error saving product: %v", err)
		handlers.RedirectAlert(c, "/admin/products", "Error saving product")
		return
	}
	handlers.RedirectAlert(c, "/admin/products", "Product saved successfully!")
}

// DeleteProduct removes a product and reloads the list. The deletion
// confirmation lives in the page, not here.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.Backend.DeleteProduct(c.Request.Context(), id); err != nil {
		log.Printf("❌ Error deleting product %s: %v", id, err)
		handlers.RedirectAlert(c, "/admin/products", "Error deleting product")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/products")
}
