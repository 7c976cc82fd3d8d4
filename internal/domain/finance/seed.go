package finance

import "github.com/shopspring/decimal"

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed returns the demo transaction list.
func Seed() []Transaction {
	return []Transaction{
		{ID: "1", Date: "2023-05-15", Description: "Client Payment - Acme Corp", Amount: amount("5000.00"),
			Type: TypeIncome, Category: "Services", Status: StatusCompleted, Notes: "Monthly retainer"},
		{ID: "2", Date: "2023-05-14", Description: "Office Supplies", Amount: amount("120.50"),
			Type: TypeExpense, Category: "Supplies", Status: StatusCompleted, Notes: "Printer paper and ink"},
		{ID: "3", Date: "2023-05-10", Description: "Client Payment - Wayne Enterprises", Amount: amount("7500.00"),
			Type: TypeIncome, Category: "Services", Status: StatusCompleted},
		{ID: "4", Date: "2023-05-08", Description: "Monthly Rent", Amount: amount("2200.00"),
			Type: TypeExpense, Category: "Rent", Status: StatusCompleted},
		{ID: "5", Date: "2023-05-05", Description: "Software Subscription", Amount: amount("99.00"),
			Type: TypeExpense, Category: "Software", Status: StatusCompleted},
		{ID: "6", Date: "2023-05-01", Description: "Client Payment - Pied Piper", Amount: amount("3000.00"),
			Type: TypeIncome, Category: "Services", Status: StatusPending},
	}
}
