package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"golang.org/x/crypto/bcrypt"

	"foodgram/internal/database"
	"foodgram/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Очистка в порядке, не нарушающем внешние ключи
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM baskets")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM ingredient_recipes")
	db.Exec("DELETE FROM tag_recipes")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM subscribes")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")
	users := []domain.User{}
	names := [][2]string{{"Анна", "Смирнова"}, {"Борис", "Кузнецов"}, {"Вера", "Попова"}}
	for i, n := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        fmt.Sprintf("user%d@foodgram.local", i+1),
			Username:     fmt.Sprintf("user%d", i+1),
			FirstName:    n[0],
			LastName:     n[1],
			PasswordHash: string(hash),
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== TAGS ==================
	log.Println("Creating tags...")
	tags := []domain.Tag{
		{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Обед", Color: "#49B64E", Slug: "lunch"},
		{Name: "Ужин", Color: "#8775D2", Slug: "dinner"},
	}
	for i := range tags {
		db.Create(&tags[i])
	}

	// ================== INGREDIENTS ==================
	// Каталог обычно наполняется cmd/loadcsv; для демо хватает короткого списка.
	log.Println("Creating ingredients...")
	ingredients := []domain.Ingredient{
		{Name: "мука", MeasurementUnit: "г"},
		{Name: "яйца куриные", MeasurementUnit: "шт."},
		{Name: "молоко", MeasurementUnit: "мл"},
		{Name: "сахар", MeasurementUnit: "г"},
		{Name: "соль", MeasurementUnit: "г"},
		{Name: "масло сливочное", MeasurementUnit: "г"},
	}
	for i := range ingredients {
		db.Create(&ingredients[i])
	}

	// ================== RECIPES ==================
	log.Println("Creating recipes...")
	recipeNames := []string{"Блины", "Омлет", "Каша манная", "Сырники", "Оладьи"}
	for i, name := range recipeNames {
		author := users[i%len(users)]
		recipe := domain.Recipe{
			Name:        name,
			Image:       fmt.Sprintf("/media/recipes/image/demo%d.jpg", i+1),
			Text:        fmt.Sprintf("Домашний рецепт: %s.", name),
			CookingTime: 10 + rand.Intn(50),
			AuthorID:    author.ID,
		}
		db.Create(&recipe)

		db.Model(&recipe).Association("Tags").Append(&tags[i%len(tags)])

		for j := 0; j < 3; j++ {
			db.Create(&domain.IngredientRecipe{
				RecipeID:     recipe.ID,
				IngredientID: ingredients[(i+j)%len(ingredients)].ID,
				Amount:       domain.MinAmount + rand.Intn(300),
			})
		}
	}

	// ================== SUBSCRIPTIONS / FAVORITES / CART ==================
	log.Println("Creating subscriptions, favorites and carts...")
	db.Create(&domain.Subscribe{UserID: users[0].ID, FollowingID: users[1].ID})
	db.Create(&domain.Subscribe{UserID: users[1].ID, FollowingID: users[0].ID})

	var recipes []domain.Recipe
	db.Order("id ASC").Find(&recipes)
	if len(recipes) >= 2 {
		db.Create(&domain.Favorite{UserID: users[0].ID, RecipeID: recipes[0].ID})
		db.Create(&domain.Basket{UserID: users[0].ID, RecipeID: recipes[0].ID})
		db.Create(&domain.Basket{UserID: users[0].ID, RecipeID: recipes[1].ID})
	}

	log.Println("Seed completed!")
	log.Println("Test accounts: user1@foodgram.local ... user3@foodgram.local / demo12345")
}
