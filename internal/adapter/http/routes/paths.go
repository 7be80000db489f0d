package routes

const (
	PathPing          = "/ping"
	PathAuth          = "/auth"
	PathCustomers     = "/customers"
	PathDevices       = "/devices"
	PathServices      = "/services"
	PathPayments      = "/payments"
	PathInventory     = "/inventory"
	PathDocuments     = "/documents"
	PathNotifications = "/notifications"
	PathSettings      = "/settings"
	PathPostalCodes   = "/cep"
	PathDashboard     = "/dashboard"
	PathExports       = "/exports"
	PathBackup        = "/backup"
)
