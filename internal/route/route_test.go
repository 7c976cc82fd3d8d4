package route

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		path   string
		page   Page
		params Params
	}{
		{"/", PageLogin, Params{}},
		{"/admin/login", PageLogin, Params{}},
		{"/dashboard", PageDashboard, Params{}},
		{"/clients", PageClients, Params{}},
		{"/clients/new", PageClientForm, Params{}},
		{"/clients/edit/42", PageClientForm, Params{"id": "42"}},
		{"/schedule/edit/abc?tab=all", PageTaskForm, Params{"id": "abc"}},
		{"/database/", PageDatabase, Params{}},
		{"/nowhere", PageNotFound, Params{}},
		{"/clients/edit", PageNotFound, Params{}},
		{"/clients/edit/1/extra", PageNotFound, Params{}},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			page, params := Match(tc.path)
			require.Equal(t, tc.page, page)
			require.Equal(t, tc.params, params)
		})
	}
}

func TestPaths(t *testing.T) {
	require.Equal(t, "/finances", ListPath(SectionFinances))
	require.Equal(t, "/database/new", NewPath(SectionDatabase))
	require.Equal(t, "/schedule/edit/7", EditPath(SectionSchedule, "7"))

	page, params := Match(EditPath(SectionClients, "9"))
	require.Equal(t, PageClientForm, page)
	require.Equal(t, "9", params["id"])
}

func TestRecorder(t *testing.T) {
	r := NewRecorder("/clients/new")
	require.False(t, r.Redirected())
	require.Equal(t, "/clients/new", r.Location())

	r.Navigate("/clients")
	require.True(t, r.Redirected())
	require.Equal(t, "/clients", r.Location())
}
