package roles

// NavItem is one entry of the dashboard navigation. Allowed is the role
// allowlist; the administrator sees every item regardless of it.
type NavItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Path    string `json:"path"`
	Allowed []Role `json:"-"`
}

var navItems = []NavItem{
	{Key: "appointments", Label: "Appointments", Path: "/dashboard/appointments",
		Allowed: []Role{Customer, Veterinarian, Secretary, PetGroomer}},
	{Key: "pets", Label: "My Pets", Path: "/dashboard/pets",
		Allowed: []Role{Customer}},
	{Key: "customers", Label: "Customers", Path: "/dashboard/customers",
		Allowed: []Role{Veterinarian, Secretary, PetGroomer}},
	{Key: "records", Label: "Medical Records", Path: "/dashboard/records",
		Allowed: []Role{Veterinarian}},
	{Key: "marketplace", Label: "Marketplace", Path: "/dashboard/marketplace",
		Allowed: []Role{Customer, Secretary}},
	{Key: "warehouse", Label: "Warehouse", Path: "/dashboard/warehouse",
		Allowed: []Role{Secretary}},
	{Key: "orders", Label: "Orders", Path: "/dashboard/orders",
		Allowed: []Role{Customer, Secretary}},
	{Key: "subscriptions", Label: "Subscriptions", Path: "/dashboard/subscriptions",
		Allowed: []Role{Customer}},
	{Key: "reports", Label: "Reports", Path: "/dashboard/reports",
		Allowed: []Role{}},
	{Key: "audit", Label: "Audit Logs", Path: "/dashboard/audit",
		Allowed: []Role{}},
}

// NavigationFor returns the navigation subset visible to a role.
// The administrator always receives the full list.
func NavigationFor(r Role) []NavItem {
	out := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if r == Administrator || allows(item.Allowed, r) {
			out = append(out, item)
		}
	}
	return out
}

func allows(list []Role, r Role) bool {
	for _, a := range list {
		if a == r {
			return true
		}
	}
	return false
}
