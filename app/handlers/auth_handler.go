package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/services"
	"github.com/shopmk/go-backoffice/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	authService  *services.AuthService
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, authService *services.AuthService, sessionStore sessions.SessionStore, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		authService:  authService,
		sessionStore: sessionStore,
		validator:    validator,
	}
}

type RegisterForm struct {
	Username       string `form:"username" validate:"required,min=3,max=100"`
	Password       string `form:"password" validate:"required,min=2"`
	RepeatPassword string `form:"repeat_password" validate:"required"`
	Name           string `form:"name" validate:"required,max=100"`
	Surname        string `form:"surname" validate:"required,max=100"`
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string); ok && userID != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Login",
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPost: error parsing form: %v", err)
		redirectWithError(w, r, "/login", "Failed to process the login form.")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArguments):
			redirectWithError(w, r, "/login", "Username and password are required.")
		case errors.Is(err, services.ErrInvalidCredentials):
			redirectWithError(w, r, "/login", "Invalid username or password.")
		default:
			log.Printf("LoginPost: login failed for %q: %v", username, err)
			redirectWithError(w, r, "/login", "Something went wrong, please try again.")
		}
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("LoginPost: error setting session for user %s: %v", user.ID, err)
		redirectWithError(w, r, "/login", "Failed to create a login session.")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Register",
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/register", data)
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("RegisterPost: error parsing form: %v", err)
		redirectWithError(w, r, "/register", "Failed to process the registration form.")
		return
	}

	form := RegisterForm{
		Username:       r.PostFormValue("username"),
		Password:       r.PostFormValue("password"),
		RepeatPassword: r.PostFormValue("repeat_password"),
		Name:           r.PostFormValue("name"),
		Surname:        r.PostFormValue("surname"),
	}

	if err := h.validator.Struct(form); err != nil {
		redirectWithError(w, r, "/register", "Please fill in all required fields.")
		return
	}

	// Self-service registration always creates a regular user; admins come
	// from the seed or are promoted by another admin.
	user, err := h.authService.Register(r.Context(), form.Username, form.Password, form.RepeatPassword, form.Name, form.Surname, models.RoleUser)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordsDoNotMatch):
			redirectWithError(w, r, "/register", "Passwords do not match.")
		case errors.Is(err, services.ErrUsernameAlreadyExists):
			redirectWithError(w, r, "/register", "That username is already taken.")
		case errors.Is(err, services.ErrInvalidArguments):
			redirectWithError(w, r, "/register", "Please fill in all required fields.")
		default:
			log.Printf("RegisterPost: registration failed for %q: %v", form.Username, err)
			redirectWithError(w, r, "/register", "Something went wrong, please try again.")
		}
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("RegisterPost: error setting session for user %s: %v", user.ID, err)
	}

	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape("Welcome, "+user.Name+"!"), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: error clearing session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func redirectWithError(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?status=error&message="+url.QueryEscape(message), http.StatusSeeOther)
}
