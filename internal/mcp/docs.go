package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `bizdesk is a small-business back office: clients, financial transactions,
scheduled tasks and a product/service catalog.

Workflow:
1) Orient: call dashboard_overview for counts, finance totals and upcoming tasks.
2) Browse: list_clients / list_transactions / list_tasks / list_catalog_items accept q (text), tab and day.
3) Edit: call get_<kind>_form (with id to edit, without to create) to see fields, options and current values.
   Then call submit_<kind>_form with only the values you want to change.
4) Every response carries the notifications the user would see and the page the app would navigate to.

Validation errors come back as INVALID_INPUT with a field -> message map; nothing is saved.

Docs:
- bizdesk://docs/guide
- bizdesk://docs/forms
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "bizdesk://docs/guide",
		Name:        "docs_guide",
		Title:       "bizdesk guide",
		Description: "Pages, tools and how lists are filtered.",
		Content: `# bizdesk guide

## Pages

| Page | List tool | Tabs |
|---|---|---|
| Clients | list_clients | all |
| Finances | list_transactions | all, income, expense |
| Schedule | list_tasks | upcoming (default), completed, all, calendar |
| Database | list_catalog_items | all, product, service |

Text search is case-insensitive and matches any searchable field:

- clients: name, email
- transactions: description, category
- catalog items: name, category, description
- tasks: not searchable; use tabs

The calendar tab shows tasks on the day given as ` + "`day`" + ` (YYYY-MM-DD).

## Other tools

- get_finance_totals: total income, total expenses and net
- get_catalog_counts: products, services and total
- get_agenda: scheduled tasks for a day and the day after
- complete_task: marks a task completed
- duplicate_catalog_item: copies an item under a new id with " (Copy)" appended
- translate / set_locale: interface strings in en or pt
- resolve_route: which page a path shows

Deleting a missing record returns NOT_FOUND and changes nothing.
`,
	},
	{
		URI:         "bizdesk://docs/forms",
		Name:        "docs_forms",
		Title:       "bizdesk forms",
		Description: "Field rules for every record form.",
		Content: `# Forms

All values are strings. Dates are YYYY-MM-DD, times HH:MM, money is a decimal
string such as "1500.00".

## Client
- name: at least 2 characters
- email: a valid address
- phone: at least 5 characters
- status: Active, Inactive or Pending

## Transaction
- amount: a positive decimal
- type: income or expense
- category: one of the income or expense categories

## Task
- date, startTime, endTime; end must not be before start
- priority: low, medium or high

## Catalog item
- price: zero or more
- tags: distinct, non-empty; pass the full list in submit_catalog_item_form
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
