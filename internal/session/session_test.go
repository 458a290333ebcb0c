package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetters(t *testing.T) {
	s := New(RoleEmployee, "Mehmet Demir")
	calls := 0
	s.Subscribe(func() { calls++ })

	s.SetRole(RoleAdmin)
	s.SetUserName("Admin")

	assert.Equal(t, RoleAdmin, s.Role())
	assert.Equal(t, "Admin", s.UserName())
	assert.Equal(t, 2, calls)
}

func TestSetRoleAcceptsAnyValue(t *testing.T) {
	s := New(RoleEmployee, "")
	s.SetRole(Role("auditor"))
	assert.Equal(t, Role("auditor"), s.Role())
	assert.False(t, s.Role().IsAdmin())
}

func TestLoginDemoAccounts(t *testing.T) {
	s := New(RoleEmployee, "Mehmet Demir")

	assert.Equal(t, ScreenDashboard, s.Login("admin@gorevtakip.com"))
	assert.Equal(t, RoleAdmin, s.Role())
	assert.Equal(t, "Admin", s.UserName())

	assert.Equal(t, ScreenTasks, s.Login("  MEHMET@gorevtakip.com "))
	assert.Equal(t, RoleEmployee, s.Role())
	assert.Equal(t, "Mehmet Demir", s.UserName())
}

func TestLoginUnknownEmailKeepsSession(t *testing.T) {
	s := New(RoleAdmin, "Admin")
	calls := 0
	s.Subscribe(func() { calls++ })

	assert.Equal(t, ScreenDashboard, s.Login("someone@example.com"))
	assert.Equal(t, RoleAdmin, s.Role())
	assert.Equal(t, "Admin", s.UserName())
	assert.Zero(t, calls)
}

func TestProfile(t *testing.T) {
	s := New(RoleAdmin, "ignored")
	p := s.Profile()
	assert.Equal(t, "Admin", p.FullName)
	assert.Equal(t, "YÖNETİCİ", p.Badge)
	assert.Equal(t, "Operasyon Müdürü", p.Job)

	s.SetRole(RoleEmployee)
	s.SetUserName("Ayşe Kara")
	p = s.Profile()
	assert.Equal(t, "Ayşe Kara", p.FullName)
	assert.Equal(t, "ÇALIŞAN", p.Badge)

	s.SetUserName("")
	assert.Equal(t, "Mehmet Demir", s.Profile().FullName)
}
