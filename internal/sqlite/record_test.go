package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/bizdesk/internal/domain/catalog"
	"github.com/rpggio/bizdesk/internal/domain/client"
	"github.com/rpggio/bizdesk/internal/domain/schedule"
	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/repository"
)

func TestRecordRepository_InsertGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRecordRepository[catalog.Item](db, catalog.Kind)

	item := catalog.Seed()[0]
	require.NoError(t, repo.Insert(ctx, item))

	loaded, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, item.Name, loaded.Name)
	require.True(t, item.Price.Equal(loaded.Price))
	require.Equal(t, item.Tags, loaded.Tags)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordRepository_InsertConflict(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRecordRepository[client.Client](db, client.Kind)

	require.NoError(t, repo.Insert(ctx, client.Seed()[0]))
	require.ErrorIs(t, repo.Insert(ctx, client.Seed()[0]), repository.ErrConflict)
	require.ErrorIs(t, repo.Insert(ctx, client.Client{Name: "no id"}), repository.ErrInvalidInput)
}

func TestRecordRepository_KindIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	clients := NewRecordRepository[client.Client](db, client.Kind)
	items := NewRecordRepository[catalog.Item](db, catalog.Kind)

	require.NoError(t, clients.Insert(ctx, client.Seed()[0]))
	require.NoError(t, items.Insert(ctx, catalog.Seed()[0]))

	list, err := clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Acme Corporation", list[0].Name)

	require.NoError(t, items.Remove(ctx, "1"))
	_, err = clients.Get(ctx, "1")
	require.NoError(t, err)
}

func TestRecordRepository_OrderSurvivesReplaceAndRemove(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRecordRepository[client.Client](db, client.Kind)

	for _, c := range client.Seed() {
		require.NoError(t, repo.Insert(ctx, c))
	}

	changed := client.Seed()[1]
	changed.Name = "Stark Industries Renamed"
	require.NoError(t, repo.Replace(ctx, changed))
	require.NoError(t, repo.Remove(ctx, "4"))
	require.NoError(t, repo.Insert(ctx, client.Client{ID: "6", Name: "Late"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ID
	}
	require.Equal(t, []string{"1", "2", "3", "5", "6"}, ids)
	require.Equal(t, "Stark Industries Renamed", list[1].Name)

	require.ErrorIs(t, repo.Replace(ctx, client.Client{ID: "4"}), repository.ErrNotFound)
	require.ErrorIs(t, repo.Remove(ctx, "4"), repository.ErrNotFound)
}

func TestRecordRepository_TaskTimesRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRecordRepository[schedule.Task](db, schedule.Kind)

	task := schedule.Seed(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))[0]
	require.NoError(t, repo.Insert(ctx, task))

	loaded, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, task.Start.Equal(loaded.Start))
	require.True(t, task.End.Equal(loaded.End))
	require.Equal(t, "10:00", schedule.Schema{Location: time.UTC}.Encode(loaded)["startTime"])
}

func TestRecordRepository_BacksEntityService(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRecordRepository[catalog.Item](db, catalog.Kind)

	seeded, err := entity.Seed[catalog.Item](ctx, repo, catalog.Seed())
	require.NoError(t, err)
	require.True(t, seeded)

	svc := entity.NewService[catalog.Item](catalog.Kind, repo, nil)
	cp, err := svc.Duplicate(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "Standard Consultation (Copy)", cp.Name)
	require.True(t, cp.Price.Equal(decimal.RequireFromString("150")))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	require.Equal(t, cp.ID, all[5].ID)

	require.ErrorIs(t, svc.Delete(ctx, "nope"), entity.ErrNotFound)
}
