package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/filter"
	"github.com/rpggio/bizdesk/internal/form"
)

func TestSchemaDefaults(t *testing.T) {
	v := Schema{}.Defaults(time.Now())
	require.Equal(t, "Active", v["status"])
	require.Equal(t, "Small Business", v["type"])
	require.Equal(t, "", v["name"])
}

func TestSchemaRejectsEmptyName(t *testing.T) {
	v := Schema{}.Defaults(time.Now())
	v["email"] = "a@b.com"
	v["phone"] = "555-0000"
	errs := form.Validate(Schema{}.Fields(), v)
	require.Equal(t, form.FieldErrors{"name": "Name must be at least 2 characters."}, errs)
}

func TestSchemaRoundTrip(t *testing.T) {
	c := Seed()[0]
	got, err := Schema{}.Decode(Schema{}.Encode(c))
	require.NoError(t, err)
	require.Equal(t, c.WithIdentity(""), got)
	require.Empty(t, form.Validate(Schema{}.Fields(), Schema{}.Encode(c)))
}

func TestFilterSearchesNameAndEmail(t *testing.T) {
	res := filter.Apply(FilterSpec, Seed(), filter.Query{Text: "WAYNE"})
	require.Len(t, res.Items, 1)
	require.Equal(t, "3", res.Items[0].ID)

	res = filter.Apply(FilterSpec, Seed(), filter.Query{Text: "piedpiper.com"})
	require.Len(t, res.Items, 1)

	res = filter.Apply(FilterSpec, Seed(), filter.Query{Text: "Startup"})
	require.Empty(t, res.Items, "type is not searchable")

	res = filter.Apply(FilterSpec, Seed(), filter.Query{Text: "zzz"})
	require.Empty(t, res.Items)
	require.Equal(t, `No clients found matching "zzz". Try a different search or add a new client.`, res.EmptyMessage)
}

func TestCloneAppendsSuffix(t *testing.T) {
	c := Seed()[1].Clone(entity.DuplicateSuffix)
	require.Equal(t, "Stark Industries (Copy)", c.Name)
	require.Equal(t, "2", c.ID)
}

func TestMessages(t *testing.T) {
	c := Client{Name: "Acme"}
	require.Equal(t, "Client created", Saved(c, false).Title)
	require.Equal(t, "Acme has been updated successfully.", Saved(c, true).Description)
	require.Equal(t, "Client deleted", Deleted().Title)
}
