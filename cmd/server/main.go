package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/andrewbantly/leasepeek-server/internal/app"
	"github.com/andrewbantly/leasepeek-server/internal/config"
	"github.com/andrewbantly/leasepeek-server/internal/controllers"
	"github.com/andrewbantly/leasepeek-server/internal/middleware"
	"github.com/andrewbantly/leasepeek-server/internal/repositories"
	"github.com/andrewbantly/leasepeek-server/internal/services"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	rentRollRepo := repositories.NewRentRollRepository(application.MongoDB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	authService := services.NewAuthService(userRepo, cfg)
	rentRollService := services.NewRentRollService(rentRollRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService)
	dataController := controllers.NewDataController(rentRollService)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Health
	router.HandleFunc("/health", healthController.HealthCheckHandler).Methods("GET")

	// /api/v1
	apiRouter := router.PathPrefix("/api").Subrouter()
	v1Router := apiRouter.PathPrefix("/v1").Subrouter()

	// Public auth endpoints
	v1Router.HandleFunc("/user/register", authController.Register).Methods("POST")
	v1Router.HandleFunc("/user/login", authController.Login).Methods("POST")

	// Protected data endpoints require a valid access token
	dataRouter := v1Router.PathPrefix("/data").Subrouter()
	dataRouter.Use(middleware.AuthMiddleware(authService))
	dataRouter.HandleFunc("/upload", dataController.Upload).Methods("POST")
	dataRouter.HandleFunc("/read", dataController.Read).Methods("GET")
	dataRouter.HandleFunc("/user", dataController.UserData).Methods("GET")
	dataRouter.HandleFunc("/delete", dataController.Delete).Methods("DELETE")
	dataRouter.HandleFunc("/update/basic", dataController.UpdateBasic).Methods("POST")
	dataRouter.HandleFunc("/update/floorplans", dataController.UpdateFloorPlans).Methods("POST")
	dataRouter.HandleFunc("/update/renovations", dataController.UpdateRenovations).Methods("POST")
	dataRouter.HandleFunc("/update/charges", dataController.UpdateChargeTypes).Methods("POST")
	dataRouter.HandleFunc("/update/statuses", dataController.UpdateStatuses).Methods("POST")

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
