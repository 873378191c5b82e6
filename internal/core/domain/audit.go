package domain

import (
	"time"

	"github.com/google/uuid"
)

// WriteAction is the kind of contract write being audited.
type WriteAction string

const (
	ActionCreateCampaign    WriteAction = "CREATE_CAMPAIGN"
	ActionDonate            WriteAction = "DONATE"
	ActionDisburse          WriteAction = "DISBURSE"
	ActionSetCampaignActive WriteAction = "SET_CAMPAIGN_ACTIVE"
	ActionSetAdmin          WriteAction = "SET_ADMIN"
	ActionAddComment        WriteAction = "ADD_COMMENT"
	ActionLike              WriteAction = "LIKE"
	ActionUnlike            WriteAction = "UNLIKE"
)

// WriteStatus is the audited outcome of a write submission.
type WriteStatus string

const (
	WriteStatusConfirmed WriteStatus = "CONFIRMED"
	WriteStatusRejected  WriteStatus = "REJECTED"
)

// WriteAudit records one operator-submitted contract write. This is an audit
// trail of operator actions, not a copy of ledger state.
type WriteAudit struct {
	ID         uuid.UUID   `json:"id"`
	Operator   string      `json:"operator"` // hex address
	Action     WriteAction `json:"action"`
	CampaignID *uint64     `json:"campaign_id,omitempty"`
	TxHash     string      `json:"tx_hash,omitempty"` // empty when rejected before submission
	Status     WriteStatus `json:"status"`
	Details    string      `json:"details,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
