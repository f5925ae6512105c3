package constants

import "fmt"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var AllRoles = []string{RoleUser, RoleAdmin}

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
