package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/middleware"
	"foodgram/internal/modules/auth"
	"foodgram/internal/modules/ingredients"
	"foodgram/internal/modules/recipes"
	"foodgram/internal/modules/shopping"
	"foodgram/internal/modules/tags"
	"foodgram/internal/modules/users"
	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	subscribeRepo := repository.NewSubscribeRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	basketRepo := repository.NewBasketRepository(db)
	shoppingRepo := repository.NewShoppingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	usersService := users.NewService(userRepo, subscribeRepo, recipeRepo)
	usersHandler := users.NewHandler(usersService)

	recipesService := recipes.NewService(
		recipeRepo,
		tagRepo,
		ingredientRepo,
		favoriteRepo,
		basketRepo,
		subscribeRepo,
		cfg.MediaRoot,
	)
	recipesHandler := recipes.NewHandler(recipesService)

	shoppingService := shopping.NewService(shoppingRepo)
	shoppingHandler := shopping.NewHandler(shoppingService)

	tagsHandler := tags.NewHandler(tagRepo)
	ingredientsHandler := ingredients.NewHandler(ingredientRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/media", cfg.MediaRoot)

	api := r.Group("/api")
	{
		// чтение доступно анонимно; токен, если передан, заполняет
		// пользовательские флаги в ответах
		public := api.Group("/")
		public.Use(middleware.OptionalJWT(j))
		{
			authHandler.RegisterPublicRoutes(public)
			usersHandler.RegisterPublicRoutes(public)
			recipesHandler.RegisterPublicRoutes(public)
			tagsHandler.RegisterRoutes(public)
			ingredientsHandler.RegisterRoutes(public)
		}

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			usersHandler.RegisterProtectedRoutes(protected)
			recipesHandler.RegisterProtectedRoutes(protected)
			shoppingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
