package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/shopmk/go-backoffice/app/configs"
	"github.com/shopmk/go-backoffice/app/handlers"
	"github.com/shopmk/go-backoffice/app/handlers/admin"
	"github.com/shopmk/go-backoffice/app/middlewares"
	"github.com/shopmk/go-backoffice/app/repositories"
	"github.com/shopmk/go-backoffice/app/services"
	"github.com/shopmk/go-backoffice/app/utils/renderer"
	"github.com/shopmk/go-backoffice/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) (http.Handler, error) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		return nil, err
	}

	categoryRepo := repositories.NewCategoryRepository(db)
	manufacturerRepo := repositories.NewManufacturerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	userRepo := repositories.NewUserRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)

	categoryService := services.NewCategoryService(categoryRepo)
	manufacturerService := services.NewManufacturerService(manufacturerRepo)
	productService := services.NewProductService(productRepo, categoryRepo, manufacturerRepo)
	authService := services.NewAuthService(userRepo, cartRepo)
	cartService := services.NewCartService(cartRepo, cartItemRepo, productRepo)

	render := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	homeHandler := handlers.NewHomeHandler(render, categoryService, productService)
	productHandler := handlers.NewProductHandler(render, productService, categoryService, manufacturerService)
	authHandler := handlers.NewAuthHandler(render, authService, sessionStore, validate)
	cartHandler := handlers.NewCartHandler(render, cartService)
	adminHandler := admin.NewAdminHandler(render, categoryService, manufacturerService, productService,
		categoryRepo, manufacturerRepo, productRepo, userRepo, validate)

	router := mux.NewRouter()
	router.Use(middlewares.SessionUserMiddleware(sessionStore, userRepo))
	router.Use(middlewares.CartCountMiddleware(cartRepo))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products", productHandler.List).Methods("GET")
	router.HandleFunc("/products/{id}", productHandler.Detail).Methods("GET")

	router.HandleFunc("/login", authHandler.LoginGet).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/register", authHandler.RegisterGet).Methods("GET")
	router.HandleFunc("/register", authHandler.RegisterPost).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	cartRoutes := router.PathPrefix("/cart").Subrouter()
	cartRoutes.Use(middlewares.RequireLoginMiddleware)
	cartRoutes.HandleFunc("", cartHandler.Show).Methods("GET")
	cartRoutes.HandleFunc("/add", cartHandler.AddPost).Methods("POST")
	cartRoutes.HandleFunc("/update", cartHandler.UpdatePost).Methods("POST")
	cartRoutes.HandleFunc("/remove", cartHandler.RemovePost).Methods("POST")

	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middlewares.AdminAuthMiddleware)
	adminRoutes.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")

	adminRoutes.HandleFunc("/categories", adminHandler.GetCategoriesPage).Methods("GET")
	adminRoutes.HandleFunc("/categories/add", adminHandler.AddCategoryPage).Methods("GET")
	adminRoutes.HandleFunc("/categories/add", adminHandler.AddCategoryPost).Methods("POST")
	adminRoutes.HandleFunc("/categories/{id}/edit", adminHandler.EditCategoryPage).Methods("GET")
	adminRoutes.HandleFunc("/categories/{id}/edit", adminHandler.EditCategoryPost).Methods("POST")
	adminRoutes.HandleFunc("/categories/{id}/delete", adminHandler.DeleteCategoryPost).Methods("POST")

	adminRoutes.HandleFunc("/manufacturers", adminHandler.GetManufacturersPage).Methods("GET")
	adminRoutes.HandleFunc("/manufacturers/add", adminHandler.AddManufacturerPage).Methods("GET")
	adminRoutes.HandleFunc("/manufacturers/add", adminHandler.AddManufacturerPost).Methods("POST")
	adminRoutes.HandleFunc("/manufacturers/{id}/edit", adminHandler.EditManufacturerPage).Methods("GET")
	adminRoutes.HandleFunc("/manufacturers/{id}/edit", adminHandler.EditManufacturerPost).Methods("POST")
	adminRoutes.HandleFunc("/manufacturers/{id}/delete", adminHandler.DeleteManufacturerPost).Methods("POST")

	adminRoutes.HandleFunc("/products", adminHandler.GetProductsPage).Methods("GET")
	adminRoutes.HandleFunc("/products/add", adminHandler.AddProductPage).Methods("GET")
	adminRoutes.HandleFunc("/products/add", adminHandler.AddProductPost).Methods("POST")
	adminRoutes.HandleFunc("/products/{id}/edit", adminHandler.EditProductPage).Methods("GET")
	adminRoutes.HandleFunc("/products/{id}/edit", adminHandler.EditProductPost).Methods("POST")
	adminRoutes.HandleFunc("/products/{id}/delete", adminHandler.DeleteProductPost).Methods("POST")

	csrfMiddleware := csrf.Protect(
		[]byte(configs.LoadENV.CSRFKey),
		csrf.Secure(configs.LoadENV.AppEnv == "production"),
		csrf.Path("/"),
	)

	return csrfMiddleware(router), nil
}
