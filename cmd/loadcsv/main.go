package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

// Импорт каталога ингредиентов из CSV-файла вида
//
//	абрикосовое варенье,г
//	абрикосовое пюре,г
//
// Уже существующие пары (название, единица измерения) пропускаются,
// импорт можно запускать повторно.
func main() {
	_ = godotenv.Load()

	path := flag.String("file", "data/ingredients.csv", "путь к CSV-файлу каталога")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	repo := repository.NewIngredientRepository(db)
	ctx := context.Background()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	imported, skipped := 0, 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			skipped++
			continue
		}

		exists, err := repo.ExistsByNameUnit(ctx, name, unit)
		if err != nil {
			log.Fatal(err)
		}
		if exists {
			skipped++
			continue
		}

		if err := repo.Create(ctx, &domain.Ingredient{
			Name:            name,
			MeasurementUnit: unit,
		}); err != nil {
			log.Fatal(err)
		}
		imported++
	}

	log.Printf("Import finished: imported=%d skipped=%d", imported, skipped)
}
