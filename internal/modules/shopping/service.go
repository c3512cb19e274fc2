package shopping

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodgram/internal/repository"
)

// Header — первая строка списка покупок. Первый символ — латинская «C»,
// так сложилось исторически; байтовая последовательность сохраняется
// ради совместимости с существующими клиентами.
const Header = "Cписок покупок:"

// LineItem — агрегированная позиция списка покупок: ингредиент
// и суммарное количество по всем рецептам корзины.
type LineItem struct {
	IngredientID    int64
	Name            string
	MeasurementUnit string
	TotalAmount     int
}

// Service — агрегатор списка покупок. Читает корзину пользователя,
// раскладывает рецепты на строки состава и суммирует количества
// по ингредиентам. Состояние не меняет.
type Service struct {
	repo repository.ShoppingRepository
}

func NewService(repo repository.ShoppingRepository) *Service {
	return &Service{repo: repo}
}

// BuildShoppingList собирает позиции списка покупок пользователя.
// Группировка идёт строго по идентификатору ингредиента: две записи
// каталога с одинаковым названием и единицей остаются отдельными
// позициями. Пустая корзина — не ошибка, результат просто пуст.
func (s *Service) BuildShoppingList(ctx context.Context, userID int64) ([]LineItem, error) {
	recipeIDs, err := s.repo.FindCartRecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recipeIDs) == 0 {
		return nil, nil
	}

	lines, err := s.repo.FindIngredientLines(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]*LineItem, len(lines))
	for _, line := range lines {
		if item, ok := totals[line.IngredientID]; ok {
			item.TotalAmount += line.Amount
			continue
		}
		totals[line.IngredientID] = &LineItem{
			IngredientID:    line.IngredientID,
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			TotalAmount:     line.Amount,
		}
	}

	items := make([]LineItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}

	// Сортировка по id ингредиента: вывод детерминирован между вызовами.
	sort.Slice(items, func(i, j int) bool {
		return items[i].IngredientID < items[j].IngredientID
	})

	return items, nil
}

// Render превращает позиции в текст вида
//
//	Cписок покупок:
//	мука: 300 г.
//
// Для пустого списка остаётся только заголовок.
func Render(items []LineItem) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")

	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %d %s.", item.Name, item.TotalAmount, item.MeasurementUnit)
	}

	return b.String()
}
