package dto

import (
	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"
)

// CreateCampaignRequest is the request body for campaign creation. Amounts
// arrive as decimal ether strings and are converted to wei server-side.
type CreateCampaignRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=200"`
	Description  string `json:"description" binding:"max=5000"`
	Media        string `json:"media" binding:"max=500"`
	Location     string `json:"location" binding:"max=200"`
	TargetAmount string `json:"target_amount" binding:"required"`
	Wallet       string `json:"wallet" binding:"required,eth_addr"`
}

// DonateRequest is the request body for a donation.
type DonateRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// DisburseRequest is the request body for a payout.
type DisburseRequest struct {
	Recipient string `json:"recipient" binding:"required,eth_addr"`
	Amount    string `json:"amount" binding:"required"`
}

// SetActiveRequest toggles a campaign's active flag.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetAdminRequest grants or revokes admin rights.
type SetAdminRequest struct {
	Address string `json:"address" binding:"required,eth_addr"`
	Allowed *bool  `json:"allowed" binding:"required"`
}

// CommentRequest is the request body for adding a comment.
type CommentRequest struct {
	Text      string `json:"text" binding:"required,min=1,max=1000"`
	Anonymous bool   `json:"anonymous"`
}

// SessionResponse describes the operator session.
type SessionResponse struct {
	State       string `json:"state"`
	Account     string `json:"account,omitempty"`
	ChainID     int64  `json:"chain_id,omitempty"`
	ConnectedAt string `json:"connected_at,omitempty"`
}

// SessionFromDomain converts a domain session for the wire.
func SessionFromDomain(s domain.Session) SessionResponse {
	resp := SessionResponse{State: string(s.State)}
	if s.State == domain.SessionConnected {
		resp.Account = s.Account.Hex()
		resp.ChainID = s.ChainID
		resp.ConnectedAt = s.ConnectedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// TxReceiptResponse is the confirmation result of a write.
type TxReceiptResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
}

// ReceiptFromDomain converts a receipt for the wire.
func ReceiptFromDomain(r *domain.TxReceipt) TxReceiptResponse {
	return TxReceiptResponse{
		TxHash:      r.TxHash,
		BlockNumber: r.BlockNumber,
		GasUsed:     r.GasUsed,
	}
}

// CampaignResponse carries one campaign. Amounts appear twice: exact wei as
// a decimal string and a human-readable ether figure.
type CampaignResponse struct {
	ID               uint64 `json:"id"`
	Creator          string `json:"creator"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Media            string `json:"media,omitempty"`
	Location         string `json:"location,omitempty"`
	TargetWei        string `json:"target_wei"`
	TargetDisplay    string `json:"target_display"`
	Wallet           string `json:"wallet"`
	CollectedWei     string `json:"collected_wei"`
	CollectedDisplay string `json:"collected_display"`
	CreatedAt        int64  `json:"created_at"`
	Active           bool   `json:"active"`
}

// CampaignFromDomain converts a campaign for the wire.
func CampaignFromDomain(c domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:               c.ID,
		Creator:          c.Creator.Hex(),
		Title:            c.Title,
		Description:      c.Description,
		Media:            c.Media,
		Location:         c.Location,
		TargetWei:        c.TargetAmount.String(),
		TargetDisplay:    c.TargetDisplay(),
		Wallet:           c.Wallet.Hex(),
		CollectedWei:     c.Collected.String(),
		CollectedDisplay: c.CollectedDisplay(),
		CreatedAt:        c.CreatedAt,
		Active:           c.Active,
	}
}

// CampaignsFromDomain converts a campaign list for the wire.
func CampaignsFromDomain(cs []domain.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CampaignFromDomain(c))
	}
	return out
}

// DonationResponse is one donation record.
type DonationResponse struct {
	Donor         string `json:"donor"`
	AmountWei     string `json:"amount_wei"`
	AmountDisplay string `json:"amount_display"`
	Timestamp     int64  `json:"timestamp"`
}

// DisbursementResponse is one payout record.
type DisbursementResponse struct {
	Recipient     string `json:"recipient"`
	AmountWei     string `json:"amount_wei"`
	AmountDisplay string `json:"amount_display"`
	Timestamp     int64  `json:"timestamp"`
}

// CommentResponse is one comment. Anonymous comments omit the author.
type CommentResponse struct {
	Author    string `json:"author,omitempty"`
	Anonymous bool   `json:"anonymous"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// CampaignDetailResponse is a campaign with its full record pages.
type CampaignDetailResponse struct {
	Campaign      CampaignResponse       `json:"campaign"`
	Donations     []DonationResponse     `json:"donations"`
	Disbursements []DisbursementResponse `json:"disbursements"`
	Comments      []CommentResponse      `json:"comments"`
}

// DetailFromDomain converts a campaign detail for the wire.
func DetailFromDomain(d *ports.CampaignDetail) CampaignDetailResponse {
	resp := CampaignDetailResponse{
		Campaign:      CampaignFromDomain(d.Campaign),
		Donations:     make([]DonationResponse, 0, len(d.Donations)),
		Disbursements: make([]DisbursementResponse, 0, len(d.Disbursements)),
		Comments:      make([]CommentResponse, 0, len(d.Comments)),
	}
	for _, don := range d.Donations {
		resp.Donations = append(resp.Donations, DonationResponse{
			Donor:         don.Donor.Hex(),
			AmountWei:     don.Amount.String(),
			AmountDisplay: domain.FormatWei(don.Amount),
			Timestamp:     don.Timestamp,
		})
	}
	for _, dis := range d.Disbursements {
		resp.Disbursements = append(resp.Disbursements, DisbursementResponse{
			Recipient:     dis.Recipient.Hex(),
			AmountWei:     dis.Amount.String(),
			AmountDisplay: domain.FormatWei(dis.Amount),
			Timestamp:     dis.Timestamp,
		})
	}
	for _, com := range d.Comments {
		cr := CommentResponse{
			Anonymous: com.Anonymous,
			Text:      com.Text,
			Timestamp: com.Timestamp,
		}
		if !com.Anonymous {
			cr.Author = com.Author.Hex()
		}
		resp.Comments = append(resp.Comments, cr)
	}
	return resp
}

// ActivityResponse is one row of the recent-activity feed.
type ActivityResponse struct {
	Type          string `json:"type"`
	CampaignID    uint64 `json:"campaign_id"`
	Counterparty  string `json:"counterparty"`
	AmountWei     string `json:"amount_wei"`
	AmountDisplay string `json:"amount_display"`
	Timestamp     int64  `json:"timestamp"`
}

// DashboardResponse is the published aggregate view.
type DashboardResponse struct {
	PassID                string             `json:"pass_id"`
	GeneratedAt           string             `json:"generated_at"`
	TotalCampaigns        int                `json:"total_campaigns"`
	TotalCollectedWei     string             `json:"total_collected_wei"`
	TotalCollectedDisplay string             `json:"total_collected_display"`
	TotalDonations        int64              `json:"total_donations"`
	RecentActivity        []ActivityResponse `json:"recent_activity"`
	Campaigns             []CampaignResponse `json:"campaigns"`
}

// DashboardFromDomain converts an aggregate view for the wire.
func DashboardFromDomain(v *domain.AggregateView) DashboardResponse {
	resp := DashboardResponse{
		PassID:                v.PassID.String(),
		GeneratedAt:           v.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		TotalCampaigns:        v.TotalCampaigns,
		TotalCollectedWei:     v.TotalCollected.String(),
		TotalCollectedDisplay: v.TotalCollectedDisplay(),
		TotalDonations:        v.TotalDonations,
		RecentActivity:        make([]ActivityResponse, 0, len(v.RecentActivity)),
		Campaigns:             CampaignsFromDomain(v.Campaigns),
	}
	for _, a := range v.RecentActivity {
		ar := ActivityResponse{
			Type:         string(a.Type),
			CampaignID:   a.CampaignID,
			Counterparty: a.Counterparty.Hex(),
			Timestamp:    a.Timestamp,
		}
		if a.Amount != nil {
			ar.AmountWei = a.Amount.String()
			ar.AmountDisplay = domain.FormatWei(a.Amount)
		}
		resp.RecentActivity = append(resp.RecentActivity, ar)
	}
	return resp
}

// AdminCheckResponse answers the admin probe. Always a definite answer: an
// unreachable ledger reads as false, never as an error.
type AdminCheckResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// ReconcilerResponse reports the event-subscription state.
type ReconcilerResponse struct {
	Attached bool `json:"attached"`
}

// MediaUploadResponse carries the stored media reference. An empty reference
// is valid and means no media was stored.
type MediaUploadResponse struct {
	Reference string `json:"reference"`
}
