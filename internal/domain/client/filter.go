package client

import "github.com/rpggio/bizdesk/internal/filter"

// FilterSpec searches clients by name and email.
var FilterSpec = filter.Spec[Client]{
	Noun: "clients",
	Hint: "Try a different search or add a new client.",
	Tabs: []filter.Tab[Client]{{Name: filter.TabAll}},
	Searchable: func(c Client) []string {
		return []string{c.Name, c.Email}
	},
}
