package client

// Kind names the client store.
const Kind = "client"

// Status is the relationship state of a client.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPending  Status = "Pending"
)

// Statuses lists every client status in display order.
var Statuses = []Status{StatusActive, StatusInactive, StatusPending}

// Types are the suggested client categories. Type is free-form.
var Types = []string{"Small Business", "Enterprise", "Startup", "Individual", "Non-profit"}

// Client is a customer relationship record
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Status  Status `json:"status"`
	Type    string `json:"type"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (c Client) Identity() string { return c.ID }

func (c Client) WithIdentity(id string) Client {
	c.ID = id
	return c
}

func (c Client) Clone(nameSuffix string) Client {
	c.Name += nameSuffix
	return c
}
