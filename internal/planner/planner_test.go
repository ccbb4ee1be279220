package planner

import (
	"testing"
	"time"

	"github.com/Shubhangisharma21/CookerHelper/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =========================================================================
// WEEK WINDOW TESTS
// =========================================================================

func TestWeekOf_MidweekAnchor(t *testing.T) {
	// Wednesday 2024-06-12 → week is Sun 2024-06-09 .. Sat 2024-06-15
	week := WeekOf(date(2024, time.June, 12))

	if len(week) != 7 {
		t.Fatalf("WeekOf() returned %d days, want 7", len(week))
	}
	if got := week[0].Format(DateFormat); got != "2024-06-09" {
		t.Errorf("week start = %s, want 2024-06-09", got)
	}
	if got := week[6].Format(DateFormat); got != "2024-06-15" {
		t.Errorf("week end = %s, want 2024-06-15", got)
	}
	if week[0].Weekday() != time.Sunday {
		t.Errorf("week starts on %s, want Sunday", week[0].Weekday())
	}
}

func TestWeekOf_SundayAnchorIsOwnStart(t *testing.T) {
	week := WeekOf(date(2024, time.June, 9)) // a Sunday

	if got := week[0].Format(DateFormat); got != "2024-06-09" {
		t.Errorf("week start = %s, want the anchor itself", got)
	}
}

func TestWeekOf_SaturdayAnchor(t *testing.T) {
	week := WeekOf(date(2024, time.June, 15)) // a Saturday

	if got := week[0].Format(DateFormat); got != "2024-06-09" {
		t.Errorf("week start = %s, want 2024-06-09", got)
	}
	if got := week[6].Format(DateFormat); got != "2024-06-15" {
		t.Errorf("week end = %s, want the anchor itself", got)
	}
}

func TestWeekOf_ConsecutiveDays(t *testing.T) {
	week := WeekOf(date(2024, time.February, 28)) // leap-year boundary nearby

	for i := 1; i < 7; i++ {
		prev, cur := week[i-1], week[i]
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			t.Errorf("week[%d] = %s does not follow week[%d] = %s",
				i, cur.Format(DateFormat), i-1, prev.Format(DateFormat))
		}
	}
}

// =========================================================================
// MEAL PLAN UPSERT / PRUNE TESTS
// =========================================================================

func testRecipe(title string, ingredients ...string) model.Recipe {
	return model.Recipe{ID: "r-" + title, Title: title, Ingredients: ingredients}
}

func TestSetMeal_CreatesPlanForNewDate(t *testing.T) {
	var plans Plans

	plans.SetMeal("2024-06-10", SlotBreakfast, testRecipe("Porridge"))

	if len(plans) != 1 {
		t.Fatalf("plans has %d entries, want 1", len(plans))
	}
	plan, ok := plans.Get("2024-06-10")
	if !ok {
		t.Fatal("Get() did not find the new plan")
	}
	if plan.Meals[SlotBreakfast].Title != "Porridge" {
		t.Errorf("breakfast = %q, want Porridge", plan.Meals[SlotBreakfast].Title)
	}
}

func TestSetMeal_MergesIntoExistingDate(t *testing.T) {
	var plans Plans

	plans.SetMeal("2024-06-10", SlotBreakfast, testRecipe("Porridge"))
	plans.SetMeal("2024-06-10", SlotDinner, testRecipe("Curry"))

	if len(plans) != 1 {
		t.Fatalf("plans has %d entries, want 1 (same date merges)", len(plans))
	}
	plan, _ := plans.Get("2024-06-10")
	if len(plan.Meals) != 2 {
		t.Errorf("plan has %d meals, want 2", len(plan.Meals))
	}
}

func TestSetMeal_ReplacesSlot(t *testing.T) {
	var plans Plans

	plans.SetMeal("2024-06-10", SlotLunch, testRecipe("Sandwich"))
	plans.SetMeal("2024-06-10", SlotLunch, testRecipe("Salad"))

	plan, _ := plans.Get("2024-06-10")
	if plan.Meals[SlotLunch].Title != "Salad" {
		t.Errorf("lunch = %q, want the replacement Salad", plan.Meals[SlotLunch].Title)
	}
	if len(plan.Meals) != 1 {
		t.Errorf("plan has %d meals, want 1", len(plan.Meals))
	}
}

func TestRemoveMeal_KeepsPlanWithOtherSlots(t *testing.T) {
	var plans Plans

	plans.SetMeal("2024-06-10", SlotBreakfast, testRecipe("Porridge"))
	plans.SetMeal("2024-06-10", SlotDinner, testRecipe("Curry"))

	plans.RemoveMeal("2024-06-10", SlotBreakfast)

	plan, ok := plans.Get("2024-06-10")
	if !ok {
		t.Fatal("plan was pruned while a slot remained")
	}
	if _, ok := plan.Meals[SlotBreakfast]; ok {
		t.Error("breakfast slot still present after removal")
	}
	if _, ok := plan.Meals[SlotDinner]; !ok {
		t.Error("dinner slot was lost")
	}
}

func TestRemoveMeal_PrunesEmptyPlan(t *testing.T) {
	var plans Plans

	plans.SetMeal("2024-06-10", SlotLunch, testRecipe("Sandwich"))
	plans.RemoveMeal("2024-06-10", SlotLunch)

	if len(plans) != 0 {
		t.Errorf("plans has %d entries, want 0 — empty plans must be pruned", len(plans))
	}
	if _, ok := plans.Get("2024-06-10"); ok {
		t.Error("Get() still finds the pruned date")
	}
}

func TestRemoveMeal_UnknownDateIsNoop(t *testing.T) {
	var plans Plans
	plans.SetMeal("2024-06-10", SlotLunch, testRecipe("Sandwich"))

	plans.RemoveMeal("2024-06-11", SlotLunch)

	if len(plans) != 1 {
		t.Errorf("RemoveMeal on an unplanned date changed the collection")
	}
}

// =========================================================================
// CHECKLIST TESTS
// =========================================================================

func TestChecklist_ToggleAndCount(t *testing.T) {
	c := NewChecklist()

	c.Toggle("item-0")
	c.Toggle("item-1")
	if !c.Checked("item-0") || !c.Checked("item-1") {
		t.Error("Toggle() did not check items")
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.Count())
	}

	c.Toggle("item-0")
	if c.Checked("item-0") {
		t.Error("second Toggle() did not uncheck the item")
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}
}
