package repository

// Keys names every collection under a common prefix ("pauloCell_" by
// default, matching the browser storage the data came from).
type Keys struct {
	Customers        string
	DeletedCustomers string
	Devices          string
	Services         string
	Inventory        string
	Documents        string
	DeletedDocuments string
	Notifications    string
	CompanySettings  string
	Payments         string
}

func NewKeys(prefix string) Keys {
	return Keys{
		Customers:        prefix + "customers",
		DeletedCustomers: prefix + "deleted_customers",
		Devices:          prefix + "devices",
		Services:         prefix + "services",
		Inventory:        prefix + "inventory",
		Documents:        prefix + "documents",
		DeletedDocuments: prefix + "deleted_documents",
		Notifications:    prefix + "notifications",
		CompanySettings:  prefix + "company_settings",
		Payments:         prefix + "payments",
	}
}

// All lists every key in a stable order; backups follow it.
func (k Keys) All() []string {
	return []string{
		k.Customers,
		k.DeletedCustomers,
		k.Devices,
		k.Services,
		k.Inventory,
		k.Documents,
		k.DeletedDocuments,
		k.Notifications,
		k.CompanySettings,
		k.Payments,
	}
}
