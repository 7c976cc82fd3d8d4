package finance

import "github.com/rpggio/bizdesk/internal/filter"

// FilterSpec narrows transactions by type and searches description and
// category.
var FilterSpec = filter.Spec[Transaction]{
	Noun: "transactions",
	Hint: "Try a different search or add a new transaction.",
	Tabs: []filter.Tab[Transaction]{
		{Name: filter.TabAll},
		{Name: string(TypeIncome)},
		{Name: string(TypeExpense)},
	},
	Category: func(t Transaction) string { return string(t.Type) },
	Searchable: func(t Transaction) []string {
		return []string{t.Description, t.Category}
	},
}
