package models

type CommissionStatusType string

const (
	CommissionStatusPending    CommissionStatusType = "pending"
	CommissionStatusAccepted   CommissionStatusType = "accepted"
	CommissionStatusRejected   CommissionStatusType = "rejected"
	CommissionStatusInProgress CommissionStatusType = "in_progress"
)

// Terminal reports whether the status admits no further accept/decline
// transition. Accepted and rejected are both final.
func (s CommissionStatusType) Terminal() bool {
	return s == CommissionStatusAccepted || s == CommissionStatusRejected
}

// CommissionRequest is a buyer's commission request addressed to an artist.
type CommissionRequest struct {
	ID                     int                  `json:"id"`
	Title                  string               `json:"title"`
	ClientName             string               `json:"client_name,omitempty"`
	CommissionType         string               `json:"commission_type"`
	Description            string               `json:"description"`
	BudgetMin              string               `json:"budget_min"`
	BudgetMax              string               `json:"budget_max"`
	Deadline               string               `json:"deadline,omitempty"`
	Status                 CommissionStatusType `json:"status"`
	Dimensions             string               `json:"dimensions,omitempty"`
	AdditionalRequirements string               `json:"additional_requirements,omitempty"`
}
