package models

import "fmt"

// Role defines the user role type
type Role string

const (
	RoleSeeker   Role = "SEEKER"
	RoleEmployer Role = "EMPLOYER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole converts a string into a Role, rejecting unknown values
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
