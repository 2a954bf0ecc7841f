package request

import (
	"fmt"
	"time"
)

type AddTrackingEventRequest struct {
	Status     string     `json:"status"`
	Message    string     `json:"message"`
	Location   string     `json:"location"`
	OccurredAt *time.Time `json:"occurred_at"`
}

func (r *AddTrackingEventRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
