package planner

import (
	"fmt"
	"strings"
)

// Category buckets for shopping-list items.
const (
	CategoryProduce = "Produce"
	CategoryMeat    = "Meat"
	CategoryDairy   = "Dairy"
	CategoryGrains  = "Grains"
	CategoryOther   = "Other"
)

// Categories lists the buckets in display order.
var Categories = []string{
	CategoryProduce,
	CategoryMeat,
	CategoryDairy,
	CategoryGrains,
	CategoryOther,
}

// categoryKeywords maps each category (checked in order) to the substrings
// that place an ingredient in it. First matching category wins; an
// ingredient matching nothing falls through to Other.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryProduce, []string{"tomato", "onion", "garlic", "pepper", "lettuce", "cucumber", "carrot", "potato"}},
	{CategoryMeat, []string{"chicken", "beef", "pork", "fish", "salmon", "turkey"}},
	{CategoryDairy, []string{"milk", "cheese", "butter", "yogurt", "cream"}},
	{CategoryGrains, []string{"rice", "pasta", "bread", "flour", "oats"}},
}

// Item is one distinct ingredient on the derived shopping list.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`     // lowercased ingredient, first letter upper-cased
	Quantity string `json:"quantity"` // "1 portion" or "N portions"
	Category string `json:"category"`
}

// ShoppingList derives the shopping list from a set of meal plans.
//
// Every ingredient string across every planned meal is flattened
// case-insensitively: "Tomato" and "tomato" are the same item. The count of
// occurrences becomes a portions label — one recipe slot using an
// ingredient is one portion of it. Items appear in first-occurrence order,
// which keeps the derivation deterministic and repeat-stable: the same
// plans always produce the same list.
func ShoppingList(plans Plans) []Item {
	counts := map[string]int{}
	order := []string{}

	for _, plan := range plans {
		for _, slot := range Slots {
			meal, ok := plan.Meals[slot]
			if !ok {
				continue
			}
			for _, ingredient := range meal.Ingredients {
				key := strings.ToLower(strings.TrimSpace(ingredient))
				if key == "" {
					continue
				}
				if counts[key] == 0 {
					order = append(order, key)
				}
				counts[key]++
			}
		}
	}

	items := make([]Item, 0, len(order))
	for i, key := range order {
		items = append(items, Item{
			ID:       fmt.Sprintf("item-%d", i),
			Name:     capitalize(key),
			Quantity: portions(counts[key]),
			Category: Categorize(key),
		})
	}
	return items
}

// Categorize assigns an ingredient to its shopping category by keyword
// substring membership. Matching is case-insensitive.
func Categorize(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, bucket := range categoryKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.category
			}
		}
	}
	return CategoryOther
}

// GroupByCategory splits a derived list into per-category sublists, keyed
// by every known category (empty slice when a bucket has no items).
func GroupByCategory(items []Item) map[string][]Item {
	grouped := make(map[string][]Item, len(Categories))
	for _, c := range Categories {
		grouped[c] = []Item{}
	}
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped
}

func portions(count int) string {
	if count > 1 {
		return fmt.Sprintf("%d portions", count)
	}
	return "1 portion"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
