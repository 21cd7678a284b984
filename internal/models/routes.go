package models

// Fixed redirect targets and cache keys.
const (
	RouteHome        = "/"
	RouteLogin       = "/login"
	RouteDashboard   = "/dashboard"
	RouteNewsletters = "/dashboard/newsletters"
	RouteInvoices    = "/dashboard/invoices"

	RouteSignedOut = RouteLogin + "?toast=signed-out"
)
