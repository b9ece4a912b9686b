package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/services"
)

type CategoryForm struct {
	Name        string `form:"name" validate:"required,max=100"`
	Description string `form:"description"`
}

// GetCategoriesPage lists all categories, narrowed by ?q= which matches
// either name or description.
func (h *AdminHandler) GetCategoriesPage(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")

	var (
		categories []models.Category
		err        error
	)
	if search != "" {
		categories, err = h.categoryService.Search(r.Context(), search)
	} else {
		categories, err = h.categoryService.FindAll(r.Context())
	}
	if err != nil {
		log.Printf("GetCategoriesPage: failed to load categories: %v", err)
		redirectWithStatus(w, r, "/admin/dashboard", "error", "Failed to load categories.")
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Categories",
		"Categories": categories,
		"Search":     search,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories/index", data)
}

func (h *AdminHandler) AddCategoryPage(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Add Category",
		"FormAction": "/admin/categories/add",
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseCategoryForm(w, r, "/admin/categories/add")
	if !ok {
		return
	}

	if _, err := h.categoryService.Create(r.Context(), form.Name, form.Description); err != nil {
		log.Printf("AddCategoryPost: failed to create category %q: %v", form.Name, err)
		redirectWithStatus(w, r, "/admin/categories/add", "error", "Failed to save the category.")
		return
	}

	redirectWithStatus(w, r, "/admin/categories", "success", "Category saved.")
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryService.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			redirectWithStatus(w, r, "/admin/categories", "error", "Category not found.")
			return
		}
		log.Printf("EditCategoryPage: failed to load category %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/categories", "error", "Failed to load the category.")
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Edit Category",
		"Category":   category,
		"FormAction": "/admin/categories/" + id + "/edit",
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}

func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, ok := h.parseCategoryForm(w, r, "/admin/categories/"+id+"/edit")
	if !ok {
		return
	}

	if _, err := h.categoryService.Update(r.Context(), id, form.Name, form.Description); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			redirectWithStatus(w, r, "/admin/categories", "error", "Category not found.")
			return
		}
		log.Printf("EditCategoryPost: failed to update category %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/categories", "error", "Failed to update the category.")
		return
	}

	redirectWithStatus(w, r, "/admin/categories", "success", "Category updated.")
}

func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.categoryService.DeleteByID(r.Context(), id); err != nil {
		log.Printf("DeleteCategoryPost: failed to delete category %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/categories", "error", "Failed to delete the category.")
		return
	}

	redirectWithStatus(w, r, "/admin/categories", "success", "Category deleted.")
}

func (h *AdminHandler) parseCategoryForm(w http.ResponseWriter, r *http.Request, backPath string) (*CategoryForm, bool) {
	if err := r.ParseForm(); err != nil {
		log.Printf("parseCategoryForm: error parsing form: %v", err)
		redirectWithStatus(w, r, backPath, "error", "Failed to process the form.")
		return nil, false
	}

	form := &CategoryForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}
	if err := h.validator.Struct(form); err != nil {
		redirectWithStatus(w, r, backPath, "error", "Name is required.")
		return nil, false
	}
	return form, true
}
