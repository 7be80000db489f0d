package response

import (
	"time"

	"paulocell_pdv/internal/usecase"
)

type DashboardResponse struct {
	Customers           int            `json:"customers"`
	Devices             int            `json:"devices"`
	ServicesByStatus    map[string]int `json:"servicesByStatus"`
	OpenServices        int            `json:"openServices"`
	Revenue             float64        `json:"revenue"`
	RevenueThisMonth    float64        `json:"revenueThisMonth"`
	LowStockItems       int            `json:"lowStockItems"`
	InventoryValue      float64        `json:"inventoryValue"`
	DocumentsByStatus   map[string]int `json:"documentsByStatus"`
	IssuedValue         float64        `json:"issuedValue"`
	UnreadNotifications int            `json:"unreadNotifications"`
	GeneratedAt         time.Time      `json:"generatedAt"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	services := make(map[string]int, len(s.ServicesByStatus))
	for k, v := range s.ServicesByStatus {
		services[string(k)] = v
	}
	docs := make(map[string]int, len(s.DocumentsByStatus))
	for k, v := range s.DocumentsByStatus {
		docs[string(k)] = v
	}
	return DashboardResponse{
		Customers:           s.Customers,
		Devices:             s.Devices,
		ServicesByStatus:    services,
		OpenServices:        s.OpenServices,
		Revenue:             s.Revenue,
		RevenueThisMonth:    s.RevenueThisMonth,
		LowStockItems:       s.LowStockItems,
		InventoryValue:      s.InventoryValue,
		DocumentsByStatus:   docs,
		IssuedValue:         s.IssuedValue,
		UnreadNotifications: s.UnreadNotifications,
		GeneratedAt:         s.GeneratedAt,
	}
}
