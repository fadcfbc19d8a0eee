// Package nav is the role-aware navigation shell: it reads the session
// once at activation and gates which entries render. It holds no other
// state and never talks to the network.
package nav

import "github.com/jwalitptl/clinic-console/internal/session"

// Entry is one sidebar item.
type Entry struct {
	Name  string `json:"name"`
	Route string `json:"route"`
}

// Shell exposes the resolved role for conditional rendering. An absent
// session leaves the role at zero and every gated branch hidden.
type Shell struct {
	role    int
	present bool
}

func NewShell(sessions session.Provider) *Shell {
	s := &Shell{}
	if sess, ok := sessions.Current(); ok {
		s.role = sess.Role
		s.present = true
	}
	return s
}

// Role returns the session role, zero when no session exists.
func (s *Shell) Role() int {
	return s.role
}

// Entries returns the navigation items visible to the current role.
// Citas and pacientes show for every signed-in role; administration
// only for admins.
func (s *Shell) Entries() []Entry {
	if !s.present {
		return nil
	}

	entries := []Entry{
		{Name: "Citas", Route: "/citas"},
		{Name: "Pacientes", Route: "/pacientes"},
	}
	if s.role == session.RoleAdmin {
		entries = append(entries, Entry{Name: "Personal", Route: "/personal"})
	}
	return entries
}
