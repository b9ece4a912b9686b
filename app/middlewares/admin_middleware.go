package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/models"
)

func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
		if !ok || user == nil {
			http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("You must log in to access the admin panel."), http.StatusFound)
			return
		}

		if user.Role != models.RoleAdmin {
			log.Printf("AdminAuthMiddleware: user %s (%s) attempted to access admin panel without admin role", user.ID, user.Username)
			http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("You do not have permission to access this page."), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
