package store

import "github.com/idilsaglam/dailydeck/internal/model"

// Seed returns the built-in deck loaded at startup.
func Seed() []model.RoutineItem {
	return []model.RoutineItem{
		{ID: "1", Time: "6:00 AM", Task: "Wake Up", Description: "A wild day appears! Start gently.", Image: "wakeup", InsertionOrder: 1},
		{ID: "2", Time: "6:30 AM", Task: "Hydrate", Description: "It's super effective! Drink water.", Image: "water", InsertionOrder: 2},
		{ID: "3", Time: "7:00 AM", Task: "Stretch", Description: "Limber up to increase evasion.", Image: "yoga", InsertionOrder: 3},
		{ID: "4", Time: "8:00 AM", Task: "Tea Time", Description: "Restore PP and focus your mind.", Image: "tea_journal", InsertionOrder: 4},
		{ID: "5", Time: "9:00 AM", Task: "Breakfast", Description: "Boost Attack stat with nutrition.", Image: "breakfast", InsertionOrder: 5},
		{ID: "6", Time: "10:00 AM", Task: "Study", Description: "Gain XP in a new skill.", Image: "study", InsertionOrder: 6},
		{ID: "7", Time: "1:00 PM", Task: "Lunch", Description: "Refuel HP for the afternoon.", Image: "lunch", InsertionOrder: 7},
		{ID: "8", Time: "3:00 PM", Task: "Walk", Description: "Encounter nature in the tall grass.", Image: "walk", InsertionOrder: 8},
		{ID: "9", Time: "5:00 PM", Task: "Reflect", Description: "Check your progress badge.", Image: "reflect", InsertionOrder: 9},
		{ID: "10", Time: "7:00 PM", Task: "Dinner", Description: "Share a meal with your party.", Image: "dinner", InsertionOrder: 10},
		{ID: "11", Time: "9:00 PM", Task: "Wind Down", Description: "Lower defense, prepare to rest.", Image: "prepare_sleep", InsertionOrder: 11},
		{ID: "12", Time: "10:00 PM", Task: "Sleep", Description: "Save your game and recharge.", Image: "sleep", InsertionOrder: 12},
	}
}
