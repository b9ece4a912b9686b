package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/services"
)

type ManufacturerForm struct {
	Name    string `form:"name" validate:"required,max=100"`
	Address string `form:"address" validate:"max=255"`
}

func (h *AdminHandler) GetManufacturersPage(w http.ResponseWriter, r *http.Request) {
	manufacturers, err := h.manufacturerService.FindAll(r.Context())
	if err != nil {
		log.Printf("GetManufacturersPage: failed to load manufacturers: %v", err)
		redirectWithStatus(w, r, "/admin/dashboard", "error", "Failed to load manufacturers.")
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         "Manufacturers",
		"Manufacturers": manufacturers,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/manufacturers/index", data)
}

func (h *AdminHandler) AddManufacturerPage(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Add Manufacturer",
		"FormAction": "/admin/manufacturers/add",
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/manufacturers/form", data)
}

func (h *AdminHandler) AddManufacturerPost(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseManufacturerForm(w, r, "/admin/manufacturers/add")
	if !ok {
		return
	}

	if _, err := h.manufacturerService.Save(r.Context(), form.Name, form.Address); err != nil {
		log.Printf("AddManufacturerPost: failed to save manufacturer %q: %v", form.Name, err)
		redirectWithStatus(w, r, "/admin/manufacturers/add", "error", "Failed to save the manufacturer.")
		return
	}

	redirectWithStatus(w, r, "/admin/manufacturers", "success", "Manufacturer saved.")
}

func (h *AdminHandler) EditManufacturerPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	manufacturer, err := h.manufacturerService.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrManufacturerNotFound) {
			redirectWithStatus(w, r, "/admin/manufacturers", "error", "Manufacturer not found.")
			return
		}
		log.Printf("EditManufacturerPage: failed to load manufacturer %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/manufacturers", "error", "Failed to load the manufacturer.")
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":        "Edit Manufacturer",
		"Manufacturer": manufacturer,
		"FormAction":   "/admin/manufacturers/" + id + "/edit",
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/manufacturers/form", data)
}

func (h *AdminHandler) EditManufacturerPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, ok := h.parseManufacturerForm(w, r, "/admin/manufacturers/"+id+"/edit")
	if !ok {
		return
	}

	if _, err := h.manufacturerService.Update(r.Context(), id, form.Name, form.Address); err != nil {
		if errors.Is(err, services.ErrManufacturerNotFound) {
			redirectWithStatus(w, r, "/admin/manufacturers", "error", "Manufacturer not found.")
			return
		}
		log.Printf("EditManufacturerPost: failed to update manufacturer %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/manufacturers", "error", "Failed to update the manufacturer.")
		return
	}

	redirectWithStatus(w, r, "/admin/manufacturers", "success", "Manufacturer updated.")
}

func (h *AdminHandler) DeleteManufacturerPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.manufacturerService.DeleteByID(r.Context(), id); err != nil {
		log.Printf("DeleteManufacturerPost: failed to delete manufacturer %s: %v", id, err)
		redirectWithStatus(w, r, "/admin/manufacturers", "error", "Failed to delete the manufacturer.")
		return
	}

	redirectWithStatus(w, r, "/admin/manufacturers", "success", "Manufacturer deleted.")
}

func (h *AdminHandler) parseManufacturerForm(w http.ResponseWriter, r *http.Request, backPath string) (*ManufacturerForm, bool) {
	if err := r.ParseForm(); err != nil {
		log.Printf("parseManufacturerForm: error parsing form: %v", err)
		redirectWithStatus(w, r, backPath, "error", "Failed to process the form.")
		return nil, false
	}

	form := &ManufacturerForm{
		Name:    r.PostFormValue("name"),
		Address: r.PostFormValue("address"),
	}
	if err := h.validator.Struct(form); err != nil {
		redirectWithStatus(w, r, backPath, "error", "Name is required.")
		return nil, false
	}
	return form, true
}
