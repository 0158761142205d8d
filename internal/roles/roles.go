package roles

import "strings"

// ======================================================
// ROLES
// ======================================================

type Role string

const (
	Customer      Role = "CUSTOMER"
	Veterinarian  Role = "VETERINARIAN"
	Secretary     Role = "SECRETARY"
	PetGroomer    Role = "PETGROOMER"
	Administrator Role = "ADMINISTRATOR"
)

// Normalize maps a stored or token role string to its canonical form.
// Comparison is case-insensitive everywhere in the system.
func Normalize(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case Customer:
		return Customer, true
	case Veterinarian:
		return Veterinarian, true
	case Secretary:
		return Secretary, true
	case PetGroomer:
		return PetGroomer, true
	case Administrator:
		return Administrator, true
	}
	return "", false
}

func IsStaff(r Role) bool {
	switch r {
	case Veterinarian, Secretary, PetGroomer, Administrator:
		return true
	}
	return false
}

func IsProvider(r Role) bool {
	return r == Veterinarian || r == PetGroomer
}

// ======================================================
// PERMISSIONS
// ======================================================

type Permission string

const (
	PermBookAppointments   Permission = "book_appointments"
	PermManageAppointments Permission = "manage_appointments"
	PermManagePets         Permission = "manage_pets"
	PermManageCustomers    Permission = "manage_customers"
	PermWriteRecords       Permission = "write_records"
	PermManageInventory    Permission = "manage_inventory"
	PermManageOrders       Permission = "manage_orders"
	PermViewReports        Permission = "view_reports"
	PermViewAuditLogs      Permission = "view_audit_logs"
)

// Single source of truth for role capabilities. The administrator is not
// listed: it implicitly holds every permission.
var grants = map[Role][]Permission{
	Customer: {
		PermBookAppointments,
		PermManagePets,
	},
	Veterinarian: {
		PermBookAppointments,
		PermManageAppointments,
		PermManagePets,
		PermManageCustomers,
		PermWriteRecords,
	},
	Secretary: {
		PermBookAppointments,
		PermManageAppointments,
		PermManagePets,
		PermManageCustomers,
		PermManageInventory,
		PermManageOrders,
	},
	PetGroomer: {
		PermBookAppointments,
		PermManageAppointments,
		PermManageCustomers,
	},
}

func Has(r Role, p Permission) bool {
	if r == Administrator {
		return true
	}
	for _, g := range grants[r] {
		if g == p {
			return true
		}
	}
	return false
}
