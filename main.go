package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/shopmk/go-backoffice/app/cmd"
	"github.com/shopmk/go-backoffice/app/configs"
	"github.com/shopmk/go-backoffice/app/db/seeders"
	"github.com/shopmk/go-backoffice/app/models/migrations"
	"github.com/shopmk/go-backoffice/app/routes"
)

func main() {

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	if err := migrations.AutoMigrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Seed before the server accepts any request. Each entity type is only
	// populated when its table is empty, so restarts are harmless.
	if err := seeders.DBSeed(context.Background(), db); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	router, err := routes.NewRouter(db)
	if err != nil {
		log.Fatal("Router setup failed:", err)
	}

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}

}
