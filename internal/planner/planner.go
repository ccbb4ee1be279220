// Package planner implements weekly meal planning and shopping-list
// derivation as pure functions over in-memory collections.
//
// This is the aggregation logic the web client runs against its local copy
// of the recipe list: no I/O, no persistence, no goroutines. Keeping it as
// a plain package means the behaviour is unit-testable and reusable (CLI,
// server-side rendering, a future persisted planner entity) without
// touching a database.
//
// The collection types are deliberately caller-owned: a Plans value is
// passed to the views that need it and mutated through its methods, rather
// than living in ambient global state.
package planner

import (
	"time"

	"github.com/Shubhangisharma21/CookerHelper/internal/model"
)

// Slot is one of the three meal positions within a single day's plan.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

// Slots lists all meal slots in day order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

// DateFormat is the calendar-date key format used throughout the planner.
const DateFormat = "2006-01-02"

// Plan holds one calendar date's meals: up to one recipe per slot.
//
// INVARIANT: a Plan inside a Plans collection always has at least one
// populated slot. RemoveMeal prunes the entry when the last slot goes.
type Plan struct {
	Date  string                `json:"date"` // YYYY-MM-DD
	Meals map[Slot]model.Recipe `json:"meals"`
}

// Plans is the client-held collection of day plans, ordered by when each
// date was first planned (matching the list the UI renders).
type Plans []Plan

// Get returns the plan for a date, if one exists.
func (p Plans) Get(date string) (*Plan, bool) {
	for i := range p {
		if p[i].Date == date {
			return &p[i], true
		}
	}
	return nil, false
}

// SetMeal assigns a recipe to a slot on a date.
//
// If a plan for the date already exists the slot is merged into it
// (replacing any recipe previously in that slot); otherwise a new plan
// entry is appended.
func (p *Plans) SetMeal(date string, slot Slot, recipe model.Recipe) {
	if existing, ok := p.Get(date); ok {
		existing.Meals[slot] = recipe
		return
	}
	*p = append(*p, Plan{
		Date:  date,
		Meals: map[Slot]model.Recipe{slot: recipe},
	})
}

// RemoveMeal clears a slot on a date. Removing the last populated slot
// prunes the date's entry from the collection entirely — there are no
// empty plans.
func (p *Plans) RemoveMeal(date string, slot Slot) {
	for i := range *p {
		if (*p)[i].Date != date {
			continue
		}
		delete((*p)[i].Meals, slot)
		if len((*p)[i].Meals) == 0 {
			*p = append((*p)[:i], (*p)[i+1:]...)
		}
		return
	}
}

// WeekOf computes the 7-day week window containing anchor: it starts on
// the Sunday on or before the anchor date and runs through Saturday.
//
// Example: anchor Wednesday 2024-06-12 → Sun 2024-06-09 .. Sat 2024-06-15.
//
// Only the calendar date of the result matters; times are truncated to
// midnight in the anchor's location.
func WeekOf(anchor time.Time) []time.Time {
	year, month, day := anchor.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, anchor.Location())
	// time.Weekday numbers Sunday as 0, so the weekday IS the offset back.
	start = start.AddDate(0, 0, -int(start.Weekday()))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
