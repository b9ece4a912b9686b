package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/shopmk/go-backoffice/app/helpers"
	"github.com/shopmk/go-backoffice/app/repositories"
	"github.com/shopmk/go-backoffice/app/utils/sessions"
)

// SessionUserMiddleware resolves the session user, if any, and puts both the
// id and the loaded user object into the request context.
func SessionUserMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				log.Printf("SessionUserMiddleware: error finding user %s: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}
			if user == nil {
				// Session points at a deleted account; drop it.
				_ = sessionStore.ClearSession(w, r)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartCountMiddleware annotates the request with the logged-in user's cart
// item count for the layout badge.
func CartCountMiddleware(cartRepo repositories.CartRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
			if !ok || userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			cart, err := cartRepo.GetOrCreateByUserID(r.Context(), userID)
			if err != nil {
				log.Printf("CartCountMiddleware: error getting cart for user %s: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			count, err := cartRepo.GetCartItemCount(r.Context(), cart.ID)
			if err != nil {
				log.Printf("CartCountMiddleware: error counting items for cart %s: %v", cart.ID, err)
				count = 0
			}

			ctx := context.WithValue(r.Context(), helpers.CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLoginMiddleware redirects anonymous requests to the login page.
func RequireLoginMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
		if !ok || userID == "" {
			http.Redirect(w, r, "/login?status=error&message=You+must+log+in+first.", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
