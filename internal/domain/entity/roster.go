package entity

import (
	"strings"
	"time"
)

// Role is a named duty position within a slot.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleBackup     Role = "backup"
	RoleKanban     Role = "kanban"
	RoleMonitoring Role = "monitoring"
)

// RosterSlot is one weekly duty row for one department.
// Role fields hold full names; an empty string means the role is unassigned.
type RosterSlot struct {
	ID         int64
	Department Department
	WeekStart  time.Time
	Primary    string
	Backup     string
	Kanban     string
	Monitoring string
}

// Role returns the assignee of role, or "" when unassigned.
func (s *RosterSlot) Role(role Role) string {
	switch role {
	case RolePrimary:
		return s.Primary
	case RoleBackup:
		return s.Backup
	case RoleKanban:
		return s.Kanban
	case RoleMonitoring:
		return s.Monitoring
	}
	return ""
}

// SetRole assigns name to role.
func (s *RosterSlot) SetRole(role Role, name string) {
	switch role {
	case RolePrimary:
		s.Primary = name
	case RoleBackup:
		s.Backup = name
	case RoleKanban:
		s.Kanban = name
	case RoleMonitoring:
		s.Monitoring = name
	}
}

// WeekEnd is the last day of the slot's duty window.
func (s *RosterSlot) WeekEnd() time.Time {
	return s.WeekStart.AddDate(0, 0, 6)
}

// Holds reports whether name occupies any role of the slot's department.
func (s *RosterSlot) Holds(name string) (Role, bool) {
	for _, role := range s.Department.Roles() {
		if SameName(s.Role(role), name) {
			return role, true
		}
	}
	return "", false
}

// Assignments counts the non-empty roles of the slot.
func (s *RosterSlot) Assignments() int {
	n := 0
	for _, role := range s.Department.Roles() {
		if s.Role(role) != "" {
			n++
		}
	}
	return n
}

// SlotAssignment is a manual edit of a slot's role names.
type SlotAssignment struct {
	Primary    string
	Backup     string
	Kanban     string
	Monitoring string
}

// SameName compares person names the way roster references are matched: case-insensitive, blanks never match.
func SameName(a, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
