package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/clinic-console/internal/nav"
	"github.com/jwalitptl/clinic-console/internal/session"
)

func TestAbsentSessionHidesEverything(t *testing.T) {
	shell := nav.NewShell(session.Absent)
	assert.Zero(t, shell.Role())
	assert.Empty(t, shell.Entries())
}

func TestMedicoSeesScreensButNotAdministration(t *testing.T) {
	shell := nav.NewShell(session.Static{
		Session: session.Session{Role: session.RoleMedico, Matricula: 1001},
		Present: true,
	})

	entries := shell.Entries()
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, "/personal", e.Route)
	}
}

func TestAdminSeesAdministration(t *testing.T) {
	shell := nav.NewShell(session.Static{
		Session: session.Session{Role: session.RoleAdmin},
		Present: true,
	})

	routes := make([]string, 0)
	for _, e := range shell.Entries() {
		routes = append(routes, e.Route)
	}
	assert.Contains(t, routes, "/personal")
}
