package handlers

import (
	"log"
	"net/http"

	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/services"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render          *render.Render
	categoryService *services.CategoryService
	productService  *services.ProductService
}

func NewHomeHandler(r *render.Render, categoryService *services.CategoryService, productService *services.ProductService) *HomeHandler {
	return &HomeHandler{
		render:          r,
		categoryService: categoryService,
		productService:  productService,
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.FindAll(r.Context())
	if err != nil {
		log.Printf("Home: failed to load categories: %v", err)
	}

	page, err := h.productService.FindPage(r.Context(), "", "", "", 1, 8)
	if err != nil {
		log.Printf("Home: failed to load featured products: %v", err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Home",
		"Categories": categories,
	})
	if page != nil {
		data["Products"] = page.Products
	}

	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
