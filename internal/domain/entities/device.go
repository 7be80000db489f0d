package entities

import "time"

type DeviceType string

const (
	DeviceTypeCellphone  DeviceType = "cellphone"
	DeviceTypeTablet     DeviceType = "tablet"
	DeviceTypeNotebook   DeviceType = "notebook"
	DeviceTypeSmartwatch DeviceType = "smartwatch"
	DeviceTypeOther      DeviceType = "other"
)

func (t DeviceType) Valid() bool {
	switch t {
	case DeviceTypeCellphone, DeviceTypeTablet, DeviceTypeNotebook, DeviceTypeSmartwatch, DeviceTypeOther:
		return true
	}
	return false
}

// DeviceStatus is the physical condition recorded at check-in.
type DeviceStatus string

const (
	DeviceStatusGood       DeviceStatus = "good"
	DeviceStatusDamaged    DeviceStatus = "damaged"
	DeviceStatusNotWorking DeviceStatus = "not_working"
)

func (s DeviceStatus) Valid() bool {
	switch s {
	case DeviceStatusGood, DeviceStatusDamaged, DeviceStatusNotWorking:
		return true
	}
	return false
}

// Device belongs to a customer through Owner (customer id). The link is not
// enforced after creation: removing the customer leaves the device in place.
type Device struct {
	ID           string       `json:"id"`
	Owner        string       `json:"owner"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Type         DeviceType   `json:"type"`
	Status       DeviceStatus `json:"status"`
	SerialNumber string       `json:"serialNumber,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (d Device) RecordID() string { return d.ID }

// Label is the short "brand model" form used in messages and receipts.
func (d Device) Label() string {
	switch {
	case d.Brand == "":
		return d.Model
	case d.Model == "":
		return d.Brand
	}
	return d.Brand + " " + d.Model
}
