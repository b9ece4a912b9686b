package admin

import (
	"log"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/repositories"
	"github.com/shopmk/go-backoffice/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render              *render.Render
	categoryService     *services.CategoryService
	manufacturerService *services.ManufacturerService
	productService      *services.ProductService
	categoryRepo        repositories.CategoryRepositoryImpl
	manufacturerRepo    repositories.ManufacturerRepositoryImpl
	productRepo         repositories.ProductRepositoryImpl
	userRepo            repositories.UserRepositoryImpl
	validator           *validator.Validate
}

func NewAdminHandler(
	r *render.Render,
	categoryService *services.CategoryService,
	manufacturerService *services.ManufacturerService,
	productService *services.ProductService,
	categoryRepo repositories.CategoryRepositoryImpl,
	manufacturerRepo repositories.ManufacturerRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	validator *validator.Validate,
) *AdminHandler {
	return &AdminHandler{
		render:              r,
		categoryService:     categoryService,
		manufacturerService: manufacturerService,
		productService:      productService,
		categoryRepo:        categoryRepo,
		manufacturerRepo:    manufacturerRepo,
		productRepo:         productRepo,
		userRepo:            userRepo,
		validator:           validator,
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Admin Dashboard",
	})

	if count, err := h.categoryRepo.Count(r.Context()); err == nil {
		data["CategoryCount"] = count
	} else {
		log.Printf("Dashboard: failed to count categories: %v", err)
	}
	if count, err := h.manufacturerRepo.Count(r.Context()); err == nil {
		data["ManufacturerCount"] = count
	} else {
		log.Printf("Dashboard: failed to count manufacturers: %v", err)
	}
	if count, err := h.productRepo.Count(r.Context()); err == nil {
		data["ProductCount"] = count
	} else {
		log.Printf("Dashboard: failed to count products: %v", err)
	}
	if count, err := h.userRepo.Count(r.Context()); err == nil {
		data["UserCount"] = count
	} else {
		log.Printf("Dashboard: failed to count users: %v", err)
	}

	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}

func redirectWithStatus(w http.ResponseWriter, r *http.Request, path, status, message string) {
	http.Redirect(w, r, path+"?status="+status+"&message="+url.QueryEscape(message), http.StatusSeeOther)
}
