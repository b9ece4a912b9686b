package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render      *render.Render
	cartService *services.CartService
}

func NewCartHandler(r *render.Render, cartService *services.CartService) *CartHandler {
	return &CartHandler{
		render:      r,
		cartService: cartService,
	}
}

func (h *CartHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	cart, err := h.cartService.GetCartForUser(r.Context(), userID)
	if err != nil {
		log.Printf("Show: failed to load cart for user %s: %v", userID, err)
		redirectWithError(w, r, "/", "Failed to load your cart.")
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Shopping Cart",
		"Cart":  cart,
	})
	_ = h.render.HTML(w, http.StatusOK, "cart/index", data)
}

func (h *CartHandler) AddPost(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/products", "Failed to process the request.")
		return
	}

	productID := r.PostFormValue("product_id")
	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		quantity = 1
	}

	if _, err := h.cartService.AddItem(r.Context(), userID, productID, quantity); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			redirectWithError(w, r, "/products", "That product no longer exists.")
		case errors.Is(err, services.ErrInvalidArguments):
			redirectWithError(w, r, "/products", "Quantity must be positive.")
		default:
			log.Printf("AddPost: failed to add product %s for user %s: %v", productID, userID, err)
			redirectWithError(w, r, "/products", "Failed to add the product to your cart.")
		}
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/cart", "Failed to process the request.")
		return
	}

	productID := r.PostFormValue("product_id")
	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		redirectWithError(w, r, "/cart", "Invalid quantity.")
		return
	}

	if _, err := h.cartService.UpdateItemQuantity(r.Context(), userID, productID, quantity); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			redirectWithError(w, r, "/cart", "That item is not in your cart.")
			return
		}
		log.Printf("UpdatePost: failed to update product %s for user %s: %v", productID, userID, err)
		redirectWithError(w, r, "/cart", "Failed to update your cart.")
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) RemovePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/cart", "Failed to process the request.")
		return
	}

	productID := r.PostFormValue("product_id")
	if _, err := h.cartService.RemoveItem(r.Context(), userID, productID); err != nil {
		log.Printf("RemovePost: failed to remove product %s for user %s: %v", productID, userID, err)
		redirectWithError(w, r, "/cart", "Failed to update your cart.")
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
