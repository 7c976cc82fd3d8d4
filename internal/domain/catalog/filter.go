package catalog

import "github.com/rpggio/bizdesk/internal/filter"

// FilterSpec narrows items by type and searches name, category and
// description.
var FilterSpec = filter.Spec[Item]{
	Noun: "items",
	Hint: "Try a different search or add a new item.",
	Tabs: []filter.Tab[Item]{
		{Name: filter.TabAll},
		{Name: string(TypeProduct)},
		{Name: string(TypeService)},
	},
	Category: func(i Item) string { return string(i.Type) },
	Searchable: func(i Item) []string {
		return []string{i.Name, i.Category, i.Description}
	},
}
