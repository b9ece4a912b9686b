package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/services"
	"github.com/shopspring/decimal"
)

const adminProductPageSize = 20

type ProductForm struct {
	Name           string `form:"name" validate:"required,max=255"`
	Price          string `form:"price" validate:"required"`
	Quantity       string `form:"quantity" validate:"required"`
	CategoryID     string `form:"category_id" validate:"required"`
	ManufacturerID string `form:"manufacturer_id" validate:"required"`
}

func (h *AdminHandler) GetProductsPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("q")
	categoryID := query.Get("category")
	manufacturerID := query.Get("manufacturer")

	pageNum := 1
	if p, err := strconv.Atoi(query.Get("page")); err == nil && p > 0 {
		pageNum = p
	}

	page, err := h.productService.FindPage(r.Context(), name, categoryID, manufacturerID, pageNum, adminProductPageSize)
	if err != nil {
		log.Printf("GetProductsPage: failed to query products: %v", err)
		redirectWithStatus(w, r, "/admin/dashboard", "error", "Failed to load products.")
		return
	}

	categories, err := h.categoryService.FindAll(r.Context())
	if err != nil {
		log.Printf("GetProductsPage: failed to load categories: %v", err)
	}
	manufacturers, err := h.manufacturerService.FindAll(r.Context())
	if err != nil {
		log.Printf("GetProductsPage: failed to load manufacturers: %v", err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         "Products",
		"Products":      page.Products,
		"Pagination":    page.Pagination,
		"Categories":    categories,
		"Manufacturers": manufacturers,
		"Search":        name,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/products/index", data)
}

func (h *AdminHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	h.renderProductForm(w, r, "Add Product", "/admin/products/add", nil)
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	form, price, quantity, ok := h.parseProductForm(w, r, "/admin/products/add")
	if !ok {
		return
	}

	if _, err := h.productService.Save(r.Context(), form.Name, price, quantity, form.CategoryID, form.ManufacturerID); err != nil {
		h.redirectProductError(w, r, "/admin/products/add", err)
		return
	}

	redirectWithStatus(w, r, "/admin/products", "success", "Product saved.")
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productService.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			redirectWithStatus(w, r, "/admin/products", "error", "Product not found.")
			return
		}
		log.Printf("EditProductPage: failed to load product %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/products", "error", "Failed to load the product.")
		return
	}

	h.renderProductForm(w, r, "Edit Product", "/admin/products/"+id+"/edit", product)
}

func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, price, quantity, ok := h.parseProductForm(w, r, "/admin/products/"+id+"/edit")
	if !ok {
		return
	}

	if _, err := h.productService.Update(r.Context(), id, form.Name, price, quantity, form.CategoryID, form.ManufacturerID); err != nil {
		h.redirectProductError(w, r, "/admin/products", err)
		return
	}

	redirectWithStatus(w, r, "/admin/products", "success", "Product updated.")
}

func (h *AdminHandler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.productService.DeleteByID(r.Context(), id); err != nil {
		log.Printf("DeleteProductPost: failed to delete product %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/products", "error", "Failed to delete the product.")
		return
	}

	redirectWithStatus(w, r, "/admin/products", "success", "Product deleted.")
}

func (h *AdminHandler) renderProductForm(w http.ResponseWriter, r *http.Request, title, action string, product *models.Product) {
	categories, err := h.categoryService.FindAll(r.Context())
	if err != nil {
		log.Printf("renderProductForm: failed to load categories: %v", err)
	}
	manufacturers, err := h.manufacturerService.FindAll(r.Context())
	if err != nil {
		log.Printf("renderProductForm: failed to load manufacturers: %v", err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         title,
		"FormAction":    action,
		"Product":       product,
		"Categories":    categories,
		"Manufacturers": manufacturers,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/products/form", data)
}

func (h *AdminHandler) parseProductForm(w http.ResponseWriter, r *http.Request, backPath string) (*ProductForm, decimal.Decimal, int, bool) {
	if err := r.ParseForm(); err != nil {
		log.Printf("parseProductForm: error parsing form: %v", err)
		redirectWithStatus(w, r, backPath, "error", "Failed to process the form.")
		return nil, decimal.Zero, 0, false
	}

	form := &ProductForm{
		Name:           r.PostFormValue("name"),
		Price:          r.PostFormValue("price"),
		Quantity:       r.PostFormValue("quantity"),
		CategoryID:     r.PostFormValue("category_id"),
		ManufacturerID: r.PostFormValue("manufacturer_id"),
	}
	if err := h.validator.Struct(form); err != nil {
		redirectWithStatus(w, r, backPath, "error", "Please fill in all required fields.")
		return nil, decimal.Zero, 0, false
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		redirectWithStatus(w, r, backPath, "error", "Price must be a number.")
		return nil, decimal.Zero, 0, false
	}
	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil {
		redirectWithStatus(w, r, backPath, "error", "Quantity must be a whole number.")
		return nil, decimal.Zero, 0, false
	}

	return form, price, quantity, true
}

func (h *AdminHandler) redirectProductError(w http.ResponseWriter, r *http.Request, backPath string, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		redirectWithStatus(w, r, backPath, "error", "The selected category no longer exists.")
	case errors.Is(err, services.ErrManufacturerNotFound):
		redirectWithStatus(w, r, backPath, "error", "The selected manufacturer no longer exists.")
	case errors.Is(err, services.ErrProductNotFound):
		redirectWithStatus(w, r, backPath, "error", "Product not found.")
	case errors.Is(err, services.ErrInvalidArguments):
		redirectWithStatus(w, r, backPath, "error", "Price and quantity must not be negative.")
	default:
		log.Printf("redirectProductError: %v", err)
		redirectWithStatus(w, r, backPath, "error", "Failed to save the product.")
	}
}
