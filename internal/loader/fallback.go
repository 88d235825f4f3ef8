package loader

import "github.com/KavinduLakshith/payable-assessment/internal/model"

// fallbackExpenses is the built-in sample dataset shown when the remote feed
// cannot be loaded. Small but varied enough that every category and search
// combination has something to show.
var fallbackExpenses = []model.Expense{
	{ID: 1, Title: "Grocery Shopping", Category: "Food", Amount: model.Money{Cents: 8450}, Date: model.NewDate(2025, 6, 2)},
	{ID: 2, Title: "Gas Station", Category: "Transport", Amount: model.Money{Cents: 4200}, Date: model.NewDate(2025, 6, 3)},
	{ID: 3, Title: "Movie Tickets", Category: "Entertainment", Amount: model.Money{Cents: 3200}, Date: model.NewDate(2025, 6, 4)},
	{ID: 4, Title: "Restaurant Dinner", Category: "Food", Amount: model.Money{Cents: 6780}, Date: model.NewDate(2025, 6, 6)},
	{ID: 5, Title: "Uber Ride", Category: "Transport", Amount: model.Money{Cents: 1850}, Date: model.NewDate(2025, 6, 7)},
	{ID: 6, Title: "Coffee Shop", Category: "Food", Amount: model.Money{Cents: 980}, Date: model.NewDate(2025, 6, 9)},
	{ID: 7, Title: "Pharmacy", Category: "Health", Amount: model.Money{Cents: 2340}, Date: model.NewDate(2025, 6, 10)},
	{ID: 8, Title: "Concert Tickets", Category: "Entertainment", Amount: model.Money{Cents: 12000}, Date: model.NewDate(2025, 6, 12)},
	{ID: 9, Title: "Lunch Meeting", Category: "Food", Amount: model.Money{Cents: 4560}, Date: model.NewDate(2025, 6, 13)},
	{ID: 10, Title: "Bus Fare", Category: "Transport", Amount: model.Money{Cents: 275}, Date: model.NewDate(2025, 6, 16)},
	{ID: 11, Title: "Gym Membership", Category: "Health", Amount: model.Money{Cents: 4999}, Date: model.NewDate(2025, 6, 17)},
	{ID: 12, Title: "Weekly Groceries", Category: "Food", Amount: model.Money{Cents: 11230}, Date: model.NewDate(2025, 6, 19)},
	{ID: 13, Title: "Streaming Subscription", Category: "Entertainment", Amount: model.Money{Cents: 1599}, Date: model.NewDate(2025, 6, 20)},
	{ID: 14, Title: "Train Ticket", Category: "Transport", Amount: model.Money{Cents: 3150}, Date: model.NewDate(2025, 6, 23)},
	{ID: 15, Title: "Bakery", Category: "Food", Amount: model.Money{Cents: 1240}, Date: model.NewDate(2025, 6, 24)},
	{ID: 16, Title: "Doctor Visit", Category: "Health", Amount: model.Money{Cents: 15000}, Date: model.NewDate(2025, 6, 26)},
	{ID: 17, Title: "Video Game", Category: "Entertainment", Amount: model.Money{Cents: 5999}, Date: model.NewDate(2025, 6, 27)},
	{ID: 18, Title: "Dinner Takeout", Category: "Food", Amount: model.Money{Cents: 3875}, Date: model.NewDate(2025, 6, 28)},
	{ID: 19, Title: "Parking Fee", Category: "Transport", Amount: model.Money{Cents: 650}, Date: model.NewDate(2025, 6, 30)},
	{ID: 20, Title: "Dental Checkup", Category: "Health", Amount: model.Money{Cents: 9500}, Date: model.NewDate(2025, 7, 1)},
}

// Fallback returns a fresh copy of the built-in sample dataset. Callers may
// mutate the result without affecting later calls.
func Fallback() []model.Expense {
	out := make([]model.Expense, len(fallbackExpenses))
	copy(out, fallbackExpenses)
	return out
}
