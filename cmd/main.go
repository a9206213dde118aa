package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "recettes-api/docs" // Import generated docs
	"recettes-api/internal/config"
	"recettes-api/internal/controllers"
	"recettes-api/internal/database"
	"recettes-api/internal/middleware"
	"recettes-api/internal/models"
	"recettes-api/internal/services"
)

var (
	db                   *gorm.DB
	recetteService       services.RecetteService
	ingredientService    services.IngredientService
	recetteController    controllers.RecetteController
	ingredientController controllers.IngredientController
	configuration        *config.Config
)

// @title Recettes API
// @version 1.0
// @description A recipe costing API: recettes, priced ingredients, computed margins and CSV export
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	recetteService = services.NewRecetteService(db)
	ingredientService = services.NewIngredientService(db)
	recetteController = controllers.NewRecetteController(recetteService)
	ingredientController = controllers.NewIngredientController(ingredientService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds initial data when the store is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromConfig(conf))
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	// Seed only if the store is empty
	var count int64
	db.Model(&models.Recette{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with a couple of priced recettes
func seedDatabase() {
	ingredientSvc := services.NewIngredientService(db)
	recetteSvc := services.NewRecetteService(db)

	seedIngredients := []struct {
		nom   string
		unite string
		prix  float64
	}{
		{"Pommes", "kg", 3.2},
		{"Pâte brisée", "piece", 1.8},
		{"Sucre", "kg", 1.1},
		{"Boeuf bourguignon", "kg", 14.5},
		{"Carottes", "kg", 1.3},
		{"Vin rouge", "l", 4.0},
	}
	for _, ing := range seedIngredients {
		if _, err := ingredientSvc.UpsertIngredient(ing.nom, ing.unite, ing.prix); err != nil {
			log.WithError(err).Warnf("Failed to seed ingredient %s", ing.nom)
		}
	}

	prixVente := 18.0
	seedRecettes := []services.CreateRecetteInput{
		{
			Nom:              "Tarte aux Pommes",
			TypePlat:         "Dessert",
			Note:             "Foncer la pâte, ranger les pommes, cuire 35 min à 180°C.",
			Portions:         6,
			TempsPreparation: 45,
			Tags:             "classique,automne",
			Ingredients: []services.LigneInput{
				{Nom: "Pommes", Quantite: 1.2, Unite: "kg"},
				{Nom: "Pâte brisée", Quantite: 1, Unite: "piece"},
				{Nom: "Sucre", Quantite: 0.08, Unite: "kg"},
			},
		},
		{
			Nom:              "Boeuf Bourguignon",
			TypePlat:         "Plat",
			Note:             "Saisir la viande, mouiller au vin, mijoter 3 h.",
			Portions:         4,
			TempsPreparation: 210,
			PrixVente:        &prixVente,
			Tags:             "mijoté,hiver",
			Ingredients: []services.LigneInput{
				{Nom: "Boeuf bourguignon", Quantite: 1, Unite: "kg"},
				{Nom: "Carottes", Quantite: 0.4, Unite: "kg"},
				{Nom: "Vin rouge", Quantite: 0.5, Unite: "l"},
			},
		},
	}
	for _, input := range seedRecettes {
		if _, err := recetteSvc.CreateRecette(input); err != nil {
			log.WithError(err).Warnf("Failed to seed recette %s", input.Nom)
		}
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	{
		recettes := api.Group("/recettes")
		{
			recettes.GET("", recetteController.GetRecettes)
			recettes.POST("/quick", recetteController.CreateRecette)
			recettes.GET("/export", recetteController.ExportCSV)
			recettes.GET("/:id/fiche", recetteController.GetFiche)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("", ingredientController.GetIngredients)
			ingredients.POST("", ingredientController.UpsertIngredient)
			ingredients.PUT("/:id", ingredientController.UpdateIngredient)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "recettes-api",
	})
}
