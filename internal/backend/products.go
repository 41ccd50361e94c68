package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"aroma_front_end/internal/models"
)

// Products fetches the full product collection.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id. This is the admin
// single-resource endpoint; the detail page uses it too instead of
// scanning the whole collection.
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, "/"+id, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// ProductForm carries the admin form fields verbatim. Values stay
// strings: the backend owns parsing and validation.
type ProductForm struct {
	Name        string
	Price       string
	Description string
	Image       string
	Stock       string
}

// CreateProduct posts a new product as a multipart form.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) error {
	return c.sendProductForm(ctx, http.MethodPost, "/", form)
}

// UpdateProduct replaces an existing product as a multipart form.
func (c *Client) UpdateProduct(ctx context.Context, id string, form ProductForm) error {
	return c.sendProductForm(ctx, http.MethodPut, "/"+id, form)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url("/"+id), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("DELETE /%s: %w", id, err)
	}
	defer drain(res)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("DELETE /%s: unexpected status %s", id, res.Status)
	}
	return nil
}

func (c *Client) sendProductForm(ctx context.Context, method, path string, form ProductForm) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        form.Name,
		"price":       form.Price,
		"description": form.Description,
		"image":       form.Image,
		"stock":       form.Stock,
	}
	for field, value := range fields {
		if err := w.WriteField(field, value); err != nil {
			return fmt.Errorf("write form field %s: %w", field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer drain(res)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %s", method, path, res.Status)
	}
	return nil
}
