package navigation

import "vitalis-service/internal/app/models"

// Static per-role menus. Entries are fixed at build time and never
// derived from user data; order is display order, first to last.
var (
	customerNav = []models.NavItem{
		{Label: "Overview", Icon: "home", Path: "/dashboard/customer"},
		{Label: "Nutrition", Icon: "apple", Path: "/dashboard/customer/nutrition"},
		{Label: "Fitness", Icon: "activity", Path: "/dashboard/customer/fitness"},
		{Label: "Consults", Icon: "stethoscope", Path: "/dashboard/customer/consults"},
		{Label: "Notifications", Icon: "bell", Path: "/notifications"},
	}
	doctorNav = []models.NavItem{
		{Label: "Overview", Icon: "home", Path: "/dashboard/doctor"},
		{Label: "Patients", Icon: "users", Path: "/dashboard/doctor/patients"},
		{Label: "Schedule", Icon: "calendar", Path: "/dashboard/doctor/schedule"},
		{Label: "Records", Icon: "folder", Path: "/dashboard/doctor/records"},
		{Label: "Notifications", Icon: "bell", Path: "/notifications"},
	}
	coachNav = []models.NavItem{
		{Label: "Overview", Icon: "home", Path: "/dashboard/coach"},
		{Label: "Clients", Icon: "users", Path: "/dashboard/coach/clients"},
		{Label: "Programs", Icon: "clipboard", Path: "/dashboard/coach/programs"},
		{Label: "Sessions", Icon: "calendar", Path: "/dashboard/coach/sessions"},
		{Label: "Notifications", Icon: "bell", Path: "/notifications"},
	}
	kitchenNav = []models.NavItem{
		{Label: "Overview", Icon: "home", Path: "/dashboard/kitchen"},
		{Label: "Orders", Icon: "shopping-bag", Path: "/dashboard/kitchen/orders"},
		{Label: "Menu", Icon: "book-open", Path: "/dashboard/kitchen/menu"},
		{Label: "Inventory", Icon: "package", Path: "/dashboard/kitchen/inventory"},
		{Label: "Notifications", Icon: "bell", Path: "/notifications"},
	}
	deliveryNav = []models.NavItem{
		{Label: "Overview", Icon: "home", Path: "/dashboard/delivery"},
		{Label: "Routes", Icon: "map", Path: "/dashboard/delivery/routes"},
		{Label: "Deliveries", Icon: "truck", Path: "/dashboard/delivery/deliveries"},
		{Label: "History", Icon: "clock", Path: "/dashboard/delivery/history"},
		{Label: "Notifications", Icon: "bell", Path: "/notifications"},
	}
	adminNav = []models.NavItem{
		{Label: "Overview", Icon: "home", Path: "/dashboard/admin"},
		{Label: "Users", Icon: "users", Path: "/dashboard/admin/users"},
		{Label: "Subscriptions", Icon: "credit-card", Path: "/dashboard/admin/subscriptions"},
		{Label: "Reports", Icon: "bar-chart", Path: "/dashboard/admin/reports"},
		{Label: "Notifications", Icon: "bell", Path: "/notifications"},
	}
)

// ResolveNavigation returns the ordered menu for a role. Total over the
// six roles; callers must pass a validated Role, an unknown value is a
// programming error and panics. The returned slice is a copy, safe for
// callers to annotate with badge counts.
func ResolveNavigation(role models.Role) []models.NavItem {
	var items []models.NavItem
	switch role {
	case models.RoleCustomer:
		items = customerNav
	case models.RoleDoctor:
		items = doctorNav
	case models.RoleCoach:
		items = coachNav
	case models.RoleKitchen:
		items = kitchenNav
	case models.RoleDelivery:
		items = deliveryNav
	case models.RoleAdmin:
		items = adminNav
	default:
		panic("navigation: unknown role " + role.String())
	}

	out := make([]models.NavItem, len(items))
	copy(out, items)
	return out
}
