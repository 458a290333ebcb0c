// Package session holds who is using the app: their role and display
// name. State lives for the process lifetime only.
package session

import (
	"strings"
	"sync"

	"github.com/nhle/gorev-takip/internal/watch"
)

// Role is the current actor's permission class. It controls what the
// screens show; the data store does not enforce it.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// IsAdmin reports whether r is the admin role.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Label returns the Turkish badge text for the role.
func (r Role) Label() string {
	if r == RoleAdmin {
		return "YÖNETİCİ"
	}
	return "ÇALIŞAN"
}

// Store holds the current role and display name.
type Store struct {
	mu        sync.RWMutex
	role      Role
	userName  string
	listeners watch.Listeners
}

// New creates a session store with the given initial values.
func New(role Role, userName string) *Store {
	return &Store{role: role, userName: userName}
}

// Role returns the current role.
func (s *Store) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// UserName returns the current display name.
func (s *Store) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userName
}

// SetRole replaces the role. Any value is accepted.
func (s *Store) SetRole(r Role) {
	s.mu.Lock()
	s.role = r
	s.mu.Unlock()
	s.listeners.Notify()
}

// SetUserName replaces the display name.
func (s *Store) SetUserName(name string) {
	s.mu.Lock()
	s.userName = name
	s.mu.Unlock()
	s.listeners.Notify()
}

// Subscribe registers fn to run after every change.
func (s *Store) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}

// Account is a demo login.
type Account struct {
	Email    string
	Password string
	Role     Role
	UserName string
}

// DemoAccounts returns the built-in accounts offered on the login screen.
func DemoAccounts() []Account {
	return []Account{
		{Email: "admin@gorevtakip.com", Password: "123456", Role: RoleAdmin, UserName: "Admin"},
		{Email: "mehmet@gorevtakip.com", Password: "123456", Role: RoleEmployee, UserName: "Mehmet Demir"},
	}
}

// FindAccount looks up a demo account by email, ignoring case and
// surrounding space.
func FindAccount(email string) (Account, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range DemoAccounts() {
		if a.Email == email {
			return a, true
		}
	}
	return Account{}, false
}

// Screen names a landing screen after login.
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenTasks     Screen = "tasks"
)

// Login switches to the demo account matching email, if any, and returns
// the landing screen for the resulting role. Unknown emails keep the
// current session. Passwords are not checked.
func (s *Store) Login(email string) Screen {
	if a, ok := FindAccount(email); ok {
		s.mu.Lock()
		s.role = a.Role
		s.userName = a.UserName
		s.mu.Unlock()
		s.listeners.Notify()
	}
	return LandingScreen(s.Role())
}

// LandingScreen returns where a role starts after login.
func LandingScreen(r Role) Screen {
	if r.IsAdmin() {
		return ScreenDashboard
	}
	return ScreenTasks
}

// Profile is the account card shown on the profile screen.
type Profile struct {
	FullName string
	Badge    string
	Email    string
	Job      string
}

// Profile returns the account card for the current session.
func (s *Store) Profile() Profile {
	role, name := s.Role(), s.UserName()
	if role.IsAdmin() {
		return Profile{
			FullName: "Admin",
			Badge:    role.Label(),
			Email:    "admin@gorevtakip.com",
			Job:      "Operasyon Müdürü",
		}
	}
	if name == "" {
		name = "Mehmet Demir"
	}
	return Profile{
		FullName: name,
		Badge:    role.Label(),
		Email:    "mehmet@gorevtakip.com",
		Job:      "Saha Çalışanı",
	}
}
