package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/rpggio/bizdesk/internal/domain/catalog"
	"github.com/rpggio/bizdesk/internal/domain/client"
	"github.com/rpggio/bizdesk/internal/domain/finance"
	"github.com/rpggio/bizdesk/internal/domain/schedule"
	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/route"
)

// Stores holds the shared entity store of every kind.
type Stores struct {
	Clients      Store[client.Client]
	Transactions Store[finance.Transaction]
	Tasks        Store[schedule.Task]
	Items        Store[catalog.Item]
}

// Options tunes a Dashboard.
type Options struct {
	Observer form.SubmitObserver
	Location *time.Location
	Now      func() time.Time
	Logger   *slog.Logger
}

// Dashboard is the set of pages backed by shared stores.
type Dashboard struct {
	Clients  *Page[client.Client]
	Finances *FinancePage
	Schedule *SchedulePage
	Catalog  *CatalogPage
	now      func() time.Time
	loc      *time.Location
}

// New wires every page to its store.
func New(stores Stores, opts Options) *Dashboard {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Dashboard{
		Clients: &Page[client.Client]{
			Section: route.SectionClients, Noun: "Client",
			Store: stores.Clients, Filter: client.FilterSpec, Schema: client.Schema{},
			Saved: client.Saved, Deleted: client.Deleted,
			Observer: opts.Observer, Now: opts.Now, Logger: opts.Logger,
		},
		Finances: &FinancePage{Page: &Page[finance.Transaction]{
			Section: route.SectionFinances, Noun: "Transaction",
			Store: stores.Transactions, Filter: finance.FilterSpec, Schema: finance.Schema{},
			Saved: finance.Saved, Deleted: finance.Deleted,
			Observer: opts.Observer, Now: opts.Now, Logger: opts.Logger,
		}},
		Schedule: &SchedulePage{Page: &Page[schedule.Task]{
			Section: route.SectionSchedule, Noun: "Task",
			Store: stores.Tasks, Filter: schedule.FilterSpec, Schema: schedule.Schema{Location: opts.Location},
			Saved: schedule.Saved, Deleted: schedule.Deleted,
			Observer: opts.Observer, Now: opts.Now, Logger: opts.Logger,
		}},
		Catalog: &CatalogPage{Page: &Page[catalog.Item]{
			Section: route.SectionDatabase, Noun: "Item",
			Store: stores.Items, Filter: catalog.FilterSpec, Schema: catalog.Schema{},
			Saved: catalog.Saved, Deleted: catalog.Deleted,
			Observer: opts.Observer, Now: opts.Now, Logger: opts.Logger,
		}},
		now: opts.Now,
		loc: opts.Location,
	}
}

// FinancePage adds totals to the transaction list.
type FinancePage struct {
	*Page[finance.Transaction]
}

// Totals sums every stored transaction.
func (p *FinancePage) Totals(ctx context.Context) (finance.Totals, error) {
	txs, err := p.Store.List(ctx)
	if err != nil {
		return finance.Totals{}, fmt.Errorf("listing transactions: %w", err)
	}
	return finance.Summarize(txs), nil
}

// SchedulePage adds the agenda and completion to the task list.
type SchedulePage struct {
	*Page[schedule.Task]
}

// Agenda lists the scheduled tasks of day and the day after.
type Agenda struct {
	Today    []schedule.Task `json:"today"`
	Tomorrow []schedule.Task `json:"tomorrow"`
}

// Agenda returns the scheduled tasks for day and the following day.
func (p *SchedulePage) Agenda(ctx context.Context, day time.Time) (Agenda, error) {
	tasks, err := p.Store.List(ctx)
	if err != nil {
		return Agenda{}, fmt.Errorf("listing tasks: %w", err)
	}
	return Agenda{
		Today:    schedule.DueOn(tasks, day),
		Tomorrow: schedule.DueOn(tasks, day.AddDate(0, 0, 1)),
	}, nil
}

// Complete marks a task completed.
func (p *SchedulePage) Complete(ctx context.Context, id string, ui UI) (schedule.Task, error) {
	task, err := p.Store.Get(ctx, id)
	if err != nil {
		p.notifyFailure(ui, id, "complete", err)
		return schedule.Task{}, err
	}
	task, err = p.Store.Update(ctx, id, task.Complete())
	if err != nil {
		p.notifyFailure(ui, id, "complete", err)
		return schedule.Task{}, err
	}
	ui.Notifier.Notify(schedule.Completed())
	return task, nil
}

// CatalogPage adds duplication and type counts to the item list.
type CatalogPage struct {
	*Page[catalog.Item]
}

// Duplicate copies an item under a new id with " (Copy)" appended.
func (p *CatalogPage) Duplicate(ctx context.Context, id string, ui UI) (catalog.Item, error) {
	item, err := p.Store.Duplicate(ctx, id)
	if err != nil {
		p.notifyFailure(ui, id, "duplicate", err)
		return catalog.Item{}, err
	}
	ui.Notifier.Notify(catalog.Duplicated())
	return item, nil
}

// Counts tallies stored items by type.
func (p *CatalogPage) Counts(ctx context.Context) (catalog.Counts, error) {
	items, err := p.Store.List(ctx)
	if err != nil {
		return catalog.Counts{}, fmt.Errorf("listing items: %w", err)
	}
	return catalog.Count(items), nil
}

// Overview is the landing page summary.
type Overview struct {
	Clients       int             `json:"clients"`
	Transactions  int             `json:"transactions"`
	Tasks         int             `json:"tasks"`
	Items         int             `json:"items"`
	PendingTasks  int             `json:"pendingTasks"`
	Finance       finance.Totals  `json:"finance"`
	Catalog       catalog.Counts  `json:"catalog"`
	RecentClients []client.Client `json:"recentClients"`
	UpcomingTasks []schedule.Task `json:"upcomingTasks"`
	Agenda        Agenda          `json:"agenda"`
}

const overviewListSize = 3

// Overview summarizes every store.
func (d *Dashboard) Overview(ctx context.Context) (Overview, error) {
	clients, err := d.Clients.Store.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing clients: %w", err)
	}
	txs, err := d.Finances.Store.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing transactions: %w", err)
	}
	tasks, err := d.Schedule.Store.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing tasks: %w", err)
	}
	items, err := d.Catalog.Store.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing items: %w", err)
	}

	now := d.now().In(d.loc)
	ov := Overview{
		Clients:       len(clients),
		Transactions:  len(txs),
		Tasks:         len(tasks),
		Items:         len(items),
		Finance:       finance.Summarize(txs),
		Catalog:       catalog.Count(items),
		RecentClients: recentClients(clients),
		UpcomingTasks: upcomingTasks(tasks, now),
		Agenda: Agenda{
			Today:    schedule.DueOn(tasks, now),
			Tomorrow: schedule.DueOn(tasks, now.AddDate(0, 0, 1)),
		},
	}
	for _, t := range tasks {
		if t.Status == schedule.StatusScheduled {
			ov.PendingTasks++
		}
	}
	return ov, nil
}

func recentClients(clients []client.Client) []client.Client {
	out := []client.Client{}
	for i := len(clients) - 1; i >= 0 && len(out) < overviewListSize; i-- {
		out = append(out, clients[i])
	}
	return out
}

func upcomingTasks(tasks []schedule.Task, now time.Time) []schedule.Task {
	out := []schedule.Task{}
	for _, t := range tasks {
		if t.Status == schedule.StatusScheduled && !t.End.Before(now) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b schedule.Task) int { return a.Start.Compare(b.Start) })
	if len(out) > overviewListSize {
		out = out[:overviewListSize]
	}
	return out
}
