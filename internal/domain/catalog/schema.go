package catalog

import (
	"slices"
	"time"

	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/notify"
)

var (
	typeOptions   = []string{string(TypeProduct), string(TypeService)}
	statusOptions = []string{string(StatusActive), string(StatusInactive), string(StatusDraft)}
)

// Schema binds the catalog form to Item records, including tags.
type Schema struct{}

// Fields returns the item form inputs.
func (Schema) Fields() []form.Field {
	return []form.Field{
		{Name: "name", Label: "Name", Kind: form.KindText, Required: true,
			Rules: []form.Rule{form.MinLength(2, "Name must be at least 2 characters.")}},
		{Name: "type", Label: "Type", Kind: form.KindSelect, Options: typeOptions,
			Rules: []form.Rule{form.OneOf(typeOptions, "Please select product or service.")}},
		{Name: "category", Label: "Category", Kind: form.KindSelect, Required: true,
			Options: slices.Concat(ProductCategories, ServiceCategories),
			Rules:   []form.Rule{form.MinLength(1, "Category is required.")}},
		{Name: "price", Label: "Price", Kind: form.KindDecimal, Required: true,
			Rules: []form.Rule{form.Decimal("Price must be a number."), form.NonNegative("Price must be a positive number."),
				form.MaxScale(2, "Price can have at most 2 decimal places.")}},
		{Name: "description", Label: "Description", Kind: form.KindTextArea},
		{Name: "status", Label: "Status", Kind: form.KindSelect, Options: statusOptions,
			Rules: []form.Rule{form.OneOf(statusOptions, "Please select a valid status.")}},
	}
}

// Defaults returns the values of a blank active product.
func (Schema) Defaults(time.Time) form.Values {
	return form.Values{
		"name":        "",
		"type":        string(TypeProduct),
		"category":    "",
		"price":       "0",
		"description": "",
		"status":      string(StatusActive),
	}
}

// Encode renders i as form values. Tags travel through the tag editor.
func (Schema) Encode(i Item) form.Values {
	return form.Values{
		"name":        i.Name,
		"type":        string(i.Type),
		"category":    i.Category,
		"price":       form.FormatDecimal(i.Price, 2),
		"description": i.Description,
		"status":      string(i.Status),
	}
}

// Decode builds an Item from validated values.
func (Schema) Decode(v form.Values) (Item, error) {
	return Item{
		Name:        v["name"],
		Type:        Type(v["type"]),
		Category:    v["category"],
		Price:       form.ParseDecimal(v["price"]),
		Description: v["description"],
		Status:      Status(v["status"]),
		Tags:        []string{},
	}, nil
}

// Tags returns the item's tags.
func (Schema) Tags(i Item) []string {
	return slices.Clone(i.Tags)
}

// WithTags returns i carrying tags.
func (Schema) WithTags(i Item, tags []string) Item {
	if tags == nil {
		tags = []string{}
	}
	i.Tags = slices.Clone(tags)
	return i
}

// Saved is the notification sent after an item form is committed.
func Saved(i Item, editing bool) notify.Notification {
	if editing {
		return notify.Success("Item updated", i.Name+" has been updated successfully.")
	}
	return notify.Success("Item created", i.Name+" has been added successfully.")
}

// Deleted is the notification sent after an item is removed.
func Deleted() notify.Notification {
	return notify.Success("Item deleted", "The item has been successfully deleted.")
}

// Duplicated is the notification sent after an item is copied.
func Duplicated() notify.Notification {
	return notify.Success("Item duplicated", "A copy of the item has been created.")
}
