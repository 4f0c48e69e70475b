package entity

import (
	"strings"
	"time"
)

// Department groups people that share a rotation.
type Department string

const (
	DepartmentConfig     Department = "config"
	DepartmentMonitoring Department = "monitoring"
)

// Departments lists every department in rotation order.
var Departments = []Department{DepartmentConfig, DepartmentMonitoring}

// ParseDepartment normalizes user input into a known department.
func ParseDepartment(s string) (Department, bool) {
	switch Department(strings.ToLower(strings.TrimSpace(s))) {
	case DepartmentConfig:
		return DepartmentConfig, true
	case DepartmentMonitoring:
		return DepartmentMonitoring, true
	}
	return "", false
}

// Roles returns the duty positions of the department in check order.
func (d Department) Roles() []Role {
	switch d {
	case DepartmentConfig:
		return []Role{RolePrimary, RoleBackup}
	case DepartmentMonitoring:
		return []Role{RoleKanban, RoleMonitoring, RoleBackup}
	}
	return nil
}

type Person struct {
	ID         string
	FullName   string
	Department Department
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PersonUpdate carries optional changes to a directory entry. Nil fields are left untouched.
type PersonUpdate struct {
	FullName   *string
	Department *Department
	IsActive   *bool
}
