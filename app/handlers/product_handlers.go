package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/services"
	"github.com/unrolled/render"
)

const productPageSize = 12

type ProductHandler struct {
	render              *render.Render
	productService      *services.ProductService
	categoryService     *services.CategoryService
	manufacturerService *services.ManufacturerService
}

func NewProductHandler(r *render.Render, productService *services.ProductService, categoryService *services.CategoryService, manufacturerService *services.ManufacturerService) *ProductHandler {
	return &ProductHandler{
		render:              r,
		productService:      productService,
		categoryService:     categoryService,
		manufacturerService: manufacturerService,
	}
}

// List renders the filtered, paged product listing. Filters arrive as query
// parameters and are optional; whatever is present narrows the result.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("q")
	categoryID := query.Get("category")
	manufacturerID := query.Get("manufacturer")

	pageNum := 1
	if p, err := strconv.Atoi(query.Get("page")); err == nil && p > 0 {
		pageNum = p
	}

	page, err := h.productService.FindPage(r.Context(), name, categoryID, manufacturerID, pageNum, productPageSize)
	if err != nil {
		log.Printf("List: failed to query products: %v", err)
		http.Redirect(w, r, "/products?status=error&message=Failed+to+load+products.", http.StatusSeeOther)
		return
	}

	categories, err := h.categoryService.FindAll(r.Context())
	if err != nil {
		log.Printf("List: failed to load categories: %v", err)
	}
	manufacturers, err := h.manufacturerService.FindAll(r.Context())
	if err != nil {
		log.Printf("List: failed to load manufacturers: %v", err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":                "Products",
		"Products":             page.Products,
		"Pagination":           page.Pagination,
		"Categories":           categories,
		"Manufacturers":        manufacturers,
		"FilterName":           name,
		"FilterCategoryID":     categoryID,
		"FilterManufacturerID": manufacturerID,
	})

	_ = h.render.HTML(w, http.StatusOK, "products/index", data)
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productService.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Detail: failed to load product %s: %v", id, err)
		http.Redirect(w, r, "/products?status=error&message=Failed+to+load+product.", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":   product.Name,
		"Product": product,
	})

	_ = h.render.HTML(w, http.StatusOK, "products/detail", data)
}
