package client

import (
	"time"

	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/notify"
)

// Schema binds the client form to Client records.
type Schema struct{}

func statusOptions() []string {
	out := make([]string, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return out
}

// Fields returns the client form inputs.
func (Schema) Fields() []form.Field {
	return []form.Field{
		{Name: "name", Label: "Client Name", Kind: form.KindText, Required: true,
			Rules: []form.Rule{form.MinLength(2, "Name must be at least 2 characters.")}},
		{Name: "email", Label: "Email", Kind: form.KindEmail, Required: true,
			Rules: []form.Rule{form.Email("Please enter a valid email address.")}},
		{Name: "phone", Label: "Phone", Kind: form.KindText, Required: true,
			Rules: []form.Rule{form.MinLength(5, "Phone number is required.")}},
		{Name: "status", Label: "Status", Kind: form.KindSelect, Options: statusOptions(),
			Rules: []form.Rule{form.OneOf(statusOptions(), "Please select a valid status.")}},
		{Name: "type", Label: "Client Type", Kind: form.KindSelect, Options: Types},
		{Name: "address", Label: "Address", Kind: form.KindText},
		{Name: "notes", Label: "Notes", Kind: form.KindTextArea},
	}
}

// Defaults returns the values of a blank client.
func (Schema) Defaults(time.Time) form.Values {
	return form.Values{
		"name":    "",
		"email":   "",
		"phone":   "",
		"status":  string(StatusActive),
		"type":    "Small Business",
		"address": "",
		"notes":   "",
	}
}

// Encode renders c as form values.
func (Schema) Encode(c Client) form.Values {
	return form.Values{
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"status":  string(c.Status),
		"type":    c.Type,
		"address": c.Address,
		"notes":   c.Notes,
	}
}

// Decode builds a Client from validated values.
func (Schema) Decode(v form.Values) (Client, error) {
	return Client{
		Name:    v["name"],
		Email:   v["email"],
		Phone:   v["phone"],
		Status:  Status(v["status"]),
		Type:    v["type"],
		Address: v["address"],
		Notes:   v["notes"],
	}, nil
}

// Saved is the notification sent after a client form is committed.
func Saved(c Client, editing bool) notify.Notification {
	if editing {
		return notify.Success("Client updated", c.Name+" has been updated successfully.")
	}
	return notify.Success("Client created", c.Name+" has been added successfully.")
}

// Deleted is the notification sent after a client is removed.
func Deleted() notify.Notification {
	return notify.Success("Client deleted", "The client has been successfully deleted.")
}
