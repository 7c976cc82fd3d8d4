package finance

import (
	"slices"
	"time"

	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/notify"
)

var (
	typeOptions   = []string{string(TypeIncome), string(TypeExpense)}
	statusOptions = []string{string(StatusPending), string(StatusCompleted), string(StatusFailed)}
)

// Schema binds the transaction form to Transaction records.
type Schema struct{}

// Fields returns the transaction form inputs.
func (Schema) Fields() []form.Field {
	return []form.Field{
		{Name: "date", Label: "Date", Kind: form.KindDate, Required: true,
			Rules: []form.Rule{form.Date("Please pick a valid date.")}},
		{Name: "description", Label: "Description", Kind: form.KindText, Required: true,
			Rules: []form.Rule{form.MinLength(2, "Description is required.")}},
		{Name: "amount", Label: "Amount", Kind: form.KindDecimal, Required: true,
			Rules: []form.Rule{form.Decimal("Amount must be a number."), form.Positive("Amount must be positive."),
				form.MaxScale(2, "Amount can have at most 2 decimal places.")}},
		{Name: "type", Label: "Type", Kind: form.KindSelect, Options: typeOptions,
			Rules: []form.Rule{form.OneOf(typeOptions, "Please select income or expense.")}},
		{Name: "category", Label: "Category", Kind: form.KindSelect, Required: true,
			Options: slices.Concat(IncomeCategories, ExpenseCategories),
			Rules:   []form.Rule{form.MinLength(1, "Category is required.")}},
		{Name: "status", Label: "Status", Kind: form.KindSelect, Options: statusOptions,
			Rules: []form.Rule{form.OneOf(statusOptions, "Please select a valid status.")}},
		{Name: "notes", Label: "Notes", Kind: form.KindTextArea},
	}
}

// Defaults returns the values of a blank transaction dated now.
func (Schema) Defaults(now time.Time) form.Values {
	return form.Values{
		"date":        now.Format(form.DateLayout),
		"description": "",
		"amount":      "0",
		"type":        string(TypeIncome),
		"category":    "",
		"status":      string(StatusCompleted),
		"notes":       "",
	}
}

// Encode renders t as form values.
func (Schema) Encode(t Transaction) form.Values {
	return form.Values{
		"date":        t.Date,
		"description": t.Description,
		"amount":      form.FormatDecimal(t.Amount, 2),
		"type":        string(t.Type),
		"category":    t.Category,
		"status":      string(t.Status),
		"notes":       t.Notes,
	}
}

// Decode builds a Transaction from validated values.
func (Schema) Decode(v form.Values) (Transaction, error) {
	return Transaction{
		Date:        v["date"],
		Description: v["description"],
		Amount:      form.ParseDecimal(v["amount"]),
		Type:        Type(v["type"]),
		Category:    v["category"],
		Status:      Status(v["status"]),
		Notes:       v["notes"],
	}, nil
}

// Saved is the notification sent after a transaction form is committed.
func Saved(_ Transaction, editing bool) notify.Notification {
	if editing {
		return notify.Success("Transaction updated", "Transaction has been updated successfully.")
	}
	return notify.Success("Transaction created", "Transaction has been added successfully.")
}

// Deleted is the notification sent after a transaction is removed.
func Deleted() notify.Notification {
	return notify.Success("Transaction deleted", "The transaction has been successfully deleted.")
}
