package constants

import "fmt"

const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleTeacher = "teacher"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya staff atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// Grouped role slices (dipakai guard route)
var (
	StaffAndUp = []string{RoleStaff, RoleAdmin, RoleOwner}
	AdminAndUp = []string{RoleAdmin, RoleOwner}
)
