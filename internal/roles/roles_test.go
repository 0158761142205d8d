package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIsCaseInsensitive(t *testing.T) {
	for _, in := range []string{"customer", "Customer", "CUSTOMER", " customer "} {
		role, ok := Normalize(in)
		require.True(t, ok, "Normalize(%q)", in)
		assert.Equal(t, Customer, role)
	}

	_, ok := Normalize("janitor")
	assert.False(t, ok)
}

func TestAdministratorHasEveryPermission(t *testing.T) {
	perms := []Permission{
		PermBookAppointments,
		PermManageAppointments,
		PermManagePets,
		PermManageCustomers,
		PermWriteRecords,
		PermManageInventory,
		PermManageOrders,
		PermViewReports,
		PermViewAuditLogs,
	}

	for _, p := range perms {
		assert.True(t, Has(Administrator, p), "administrator should hold %s", p)
	}
}

func TestCustomerPermissions(t *testing.T) {
	assert.True(t, Has(Customer, PermBookAppointments))
	assert.True(t, Has(Customer, PermManagePets))
	assert.False(t, Has(Customer, PermViewReports))
	assert.False(t, Has(Customer, PermManageInventory))
	assert.False(t, Has(Customer, PermWriteRecords))
}

func TestNavigationForAdministratorReturnsEverything(t *testing.T) {
	nav := NavigationFor(Administrator)
	require.Len(t, nav, len(navItems))
}

func TestNavigationForRoleReturnsAllowlistedSubset(t *testing.T) {
	nav := NavigationFor(Customer)
	require.NotEmpty(t, nav)

	for _, item := range nav {
		assert.True(t, allows(item.Allowed, Customer),
			"item %s is not allowlisted for customers", item.Key)
	}

	// Items with an empty allowlist are admin-only.
	for _, item := range nav {
		assert.NotEmpty(t, item.Allowed, "item %s should be admin-only", item.Key)
	}
}

func TestNavigationDiffersPerRole(t *testing.T) {
	customer := NavigationFor(Customer)
	secretary := NavigationFor(Secretary)

	keys := func(items []NavItem) map[string]bool {
		out := make(map[string]bool, len(items))
		for _, it := range items {
			out[it.Key] = true
		}
		return out
	}

	customerKeys := keys(customer)
	secretaryKeys := keys(secretary)

	assert.True(t, customerKeys["pets"])
	assert.False(t, secretaryKeys["pets"])
	assert.True(t, secretaryKeys["warehouse"])
	assert.False(t, customerKeys["warehouse"])
}

func TestIsStaff(t *testing.T) {
	assert.False(t, IsStaff(Customer))
	assert.True(t, IsStaff(Veterinarian))
	assert.True(t, IsStaff(Secretary))
	assert.True(t, IsStaff(PetGroomer))
	assert.True(t, IsStaff(Administrator))
}
