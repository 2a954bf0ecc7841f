package request

import (
	"fmt"

	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
)

type CreateShipmentRequest struct {
	CarrierCode    string `json:"carrier_code"`
	TrackingNumber string `json:"tracking_number"`
	Title          string `json:"title"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
}

func (r *CreateShipmentRequest) Validate() error {
	if r.CarrierCode == "" {
		return fmt.Errorf("carrier code is required")
	}
	if r.TrackingNumber == "" {
		return fmt.Errorf("tracking number is required")
	}
	return nil
}

// UpdateShipmentRequest carries only the mutable fields; empty strings leave
// the current value untouched.
type UpdateShipmentRequest struct {
	Title       string `json:"title"`
	Status      string `json:"status"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (r *UpdateShipmentRequest) Validate() error {
	if r.Status != "" && !shipment.ValidStatus(r.Status) {
		return fmt.Errorf("invalid shipment status: %s", r.Status)
	}
	return nil
}
