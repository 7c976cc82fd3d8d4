package finance

import "github.com/shopspring/decimal"

// Kind names the transaction store.
const Kind = "transaction"

// Type separates money in from money out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Status is the settlement state of a transaction.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusFailed    Status = "Failed"
)

var (
	// IncomeCategories are suggested for income transactions.
	IncomeCategories = []string{"Services", "Products", "Interest", "Investments", "Refunds", "Other Income"}
	// ExpenseCategories are suggested for expense transactions.
	ExpenseCategories = []string{"Rent", "Utilities", "Salaries", "Supplies", "Software", "Hardware", "Marketing", "Travel", "Insurance", "Other Expenses"}
)

// Categories returns the suggested categories for t.
func Categories(t Type) []string {
	if t == TypeExpense {
		return ExpenseCategories
	}
	return IncomeCategories
}

// Transaction is one income or expense entry. Date is a YYYY-MM-DD day.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        Type            `json:"type"`
	Category    string          `json:"category"`
	Status      Status          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
}

func (t Transaction) Identity() string { return t.ID }

func (t Transaction) WithIdentity(id string) Transaction {
	t.ID = id
	return t
}

func (t Transaction) Clone(nameSuffix string) Transaction {
	t.Description += nameSuffix
	return t
}

// Totals summarizes a set of transactions.
type Totals struct {
	Income   decimal.Decimal `json:"totalIncome"`
	Expenses decimal.Decimal `json:"totalExpenses"`
	Net      decimal.Decimal `json:"netIncome"`
}

// Summarize adds up income and expenses regardless of status.
func Summarize(txs []Transaction) Totals {
	var tot Totals
	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			tot.Income = tot.Income.Add(tx.Amount)
		case TypeExpense:
			tot.Expenses = tot.Expenses.Add(tx.Amount)
		}
	}
	tot.Net = tot.Income.Sub(tot.Expenses)
	return tot
}
