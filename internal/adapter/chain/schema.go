package chain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// requiredMethods is the contract surface the gateway calls. A schema missing
// any of these cannot serve the gateway and is rejected at startup.
var requiredMethods = []string{
	"nextCampaignId",
	"campaigns",
	"owner",
	"isAdmin",
	"getDonationsCount",
	"getDonation",
	"getDisbursementsCount",
	"getDisbursement",
	"getCommentsCount",
	"getComment",
	"createCampaign",
	"donate",
	"disburseFromContract",
	"setCampaignActive",
	"setAdmin",
	"addComment",
	"like",
	"unlike",
}

// requiredEvents is the push surface the reconciler subscribes to.
var requiredEvents = []string{
	"CampaignCreated",
	"DonationReceived",
	"Disbursed",
	"CommentAdded",
	"Liked",
	"Unliked",
}

// LoadSchema reads and validates the contract interface document. The file
// may be a bare ABI array or a compiler artifact wrapping it as {"abi": [...]}.
// Any failure here is fatal for the gateway: no call is possible without the
// schema.
func LoadSchema(path string) (*abi.ABI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.ErrSchemaLoadFailed(fmt.Errorf("reading %s: %w", path, err))
	}
	return ParseSchema(raw)
}

// ParseSchema parses and validates raw schema bytes.
func ParseSchema(raw []byte) (*abi.ABI, error) {
	abiJSON := raw

	// Compiler artifact form: {"abi": [...], ...}
	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(raw, &artifact); err == nil && len(artifact.ABI) > 0 {
		abiJSON = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, apperror.ErrSchemaLoadFailed(fmt.Errorf("parsing ABI: %w", err))
	}

	for _, m := range requiredMethods {
		if _, ok := parsed.Methods[m]; !ok {
			return nil, apperror.ErrSchemaLoadFailed(fmt.Errorf("ABI is missing method %q", m))
		}
	}
	for _, e := range requiredEvents {
		if _, ok := parsed.Events[e]; !ok {
			return nil, apperror.ErrSchemaLoadFailed(fmt.Errorf("ABI is missing event %q", e))
		}
	}

	return &parsed, nil
}
