package catalog

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Kind names the catalog store.
const Kind = "item"

// Type separates goods from work.
type Type string

const (
	TypeProduct Type = "product"
	TypeService Type = "service"
)

// Status is the publication state of an item.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDraft    Status = "draft"
)

var (
	// ProductCategories are suggested for products.
	ProductCategories = []string{"Software", "Hardware", "Reports", "Ebooks", "Templates", "Other Products"}
	// ServiceCategories are suggested for services.
	ServiceCategories = []string{"Consulting", "Development", "Design", "Marketing", "Support", "Training", "Other Services"}
)

// Categories returns the suggested categories for t.
func Categories(t Type) []string {
	if t == TypeProduct {
		return ProductCategories
	}
	return ServiceCategories
}

// Item is a sellable product or service. Tags are unique and ordered.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        Type            `json:"type"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Status      Status          `json:"status"`
	Tags        []string        `json:"tags"`
}

func (i Item) Identity() string { return i.ID }

func (i Item) WithIdentity(id string) Item {
	i.ID = id
	i.Tags = slices.Clone(i.Tags)
	return i
}

func (i Item) Clone(nameSuffix string) Item {
	i.Name += nameSuffix
	i.Tags = slices.Clone(i.Tags)
	return i
}

// Counts tallies items by type.
type Counts struct {
	Products int `json:"products"`
	Services int `json:"services"`
	Total    int `json:"total"`
}

// Count tallies items by type.
func Count(items []Item) Counts {
	c := Counts{Total: len(items)}
	for _, it := range items {
		switch it.Type {
		case TypeProduct:
			c.Products++
		case TypeService:
			c.Services++
		}
	}
	return c
}
