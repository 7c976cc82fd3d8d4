package catalog

import "github.com/shopspring/decimal"

// Seed returns the demo catalog.
func Seed() []Item {
	price := decimal.RequireFromString
	return []Item{
		{ID: "1", Name: "Standard Consultation", Type: TypeService, Category: "Consulting", Price: price("150.00"),
			Description: "1-hour consultation with a specialist", Status: StatusActive, Tags: []string{"consulting", "professional"}},
		{ID: "2", Name: "Website Development - Basic", Type: TypeService, Category: "Development", Price: price("1500.00"),
			Description: "Basic website development package", Status: StatusActive, Tags: []string{"web", "development"}},
		{ID: "3", Name: "Business Analytics Report", Type: TypeProduct, Category: "Reports", Price: price("299.00"),
			Description: "Comprehensive business analytics report", Status: StatusActive, Tags: []string{"report", "analytics"}},
		{ID: "4", Name: "Mobile App Development", Type: TypeService, Category: "Development", Price: price("5000.00"),
			Description: "Custom mobile application development", Status: StatusActive, Tags: []string{"mobile", "development", "app"}},
		{ID: "5", Name: "SEO Audit", Type: TypeService, Category: "Marketing", Price: price("450.00"),
			Description: "Complete SEO audit with recommendations", Status: StatusActive, Tags: []string{"seo", "marketing"}},
	}
}
