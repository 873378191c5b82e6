package chain

import (
	"context"
	"fmt"
	"math/big"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// NextCampaignID returns the next identifier the ledger will assign.
// Campaign ids live in [1, nextCampaignId).
func (c *Client) NextCampaignID(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, "nextCampaignId")
	if err != nil {
		return 0, err
	}
	if err := expectOutputs("nextCampaignId", out, 1); err != nil {
		return 0, err
	}
	return toBig(out[0]).Uint64(), nil
}

// Campaign reads one campaign record. Amounts stay in exact wei; display
// conversion happens at the DTO boundary.
func (c *Client) Campaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	out, err := c.call(ctx, "campaigns", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, err
	}
	if err := expectOutputs("campaigns", out, 11); err != nil {
		return nil, err
	}

	return &domain.Campaign{
		ID:           toBig(out[0]).Uint64(),
		Creator:      toAddress(out[1]),
		Title:        toString(out[2]),
		Description:  toString(out[3]),
		Media:        toString(out[4]),
		Location:     toString(out[5]),
		TargetAmount: toBig(out[6]),
		Wallet:       toAddress(out[7]),
		Collected:    toBig(out[8]),
		CreatedAt:    toBig(out[9]).Int64(),
		Active:       toBool(out[10]),
	}, nil
}

// Owner returns the contract owner address.
func (c *Client) Owner(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}
	if err := expectOutputs("owner", out, 1); err != nil {
		return common.Address{}, err
	}
	return toAddress(out[0]), nil
}

// IsAdmin reads the admin flag for an address. The ledger remains the
// authority: this read gates UI, not the contract itself.
func (c *Client) IsAdmin(ctx context.Context, addr common.Address) (bool, error) {
	out, err := c.call(ctx, "isAdmin", addr)
	if err != nil {
		return false, err
	}
	if err := expectOutputs("isAdmin", out, 1); err != nil {
		return false, err
	}
	return toBool(out[0]), nil
}

// DonationsCount returns the number of donations for a campaign.
func (c *Client) DonationsCount(ctx context.Context, campaignID uint64) (uint64, error) {
	return c.countOf(ctx, "getDonationsCount", campaignID)
}

// DonationAt reads one donation by insertion index (0..count-1).
func (c *Client) DonationAt(ctx context.Context, campaignID, index uint64) (*domain.Donation, error) {
	out, err := c.call(ctx, "getDonation", new(big.Int).SetUint64(campaignID), new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	if err := expectOutputs("getDonation", out, 3); err != nil {
		return nil, err
	}
	return &domain.Donation{
		CampaignID: campaignID,
		Donor:      toAddress(out[0]),
		Amount:     toBig(out[1]),
		Timestamp:  toBig(out[2]).Int64(),
	}, nil
}

// DisbursementsCount returns the number of disbursements for a campaign.
func (c *Client) DisbursementsCount(ctx context.Context, campaignID uint64) (uint64, error) {
	return c.countOf(ctx, "getDisbursementsCount", campaignID)
}

// DisbursementAt reads one disbursement by insertion index.
func (c *Client) DisbursementAt(ctx context.Context, campaignID, index uint64) (*domain.Disbursement, error) {
	out, err := c.call(ctx, "getDisbursement", new(big.Int).SetUint64(campaignID), new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	if err := expectOutputs("getDisbursement", out, 3); err != nil {
		return nil, err
	}
	return &domain.Disbursement{
		CampaignID: campaignID,
		Recipient:  toAddress(out[0]),
		Amount:     toBig(out[1]),
		Timestamp:  toBig(out[2]).Int64(),
	}, nil
}

// CommentsCount returns the number of comments for a campaign.
func (c *Client) CommentsCount(ctx context.Context, campaignID uint64) (uint64, error) {
	return c.countOf(ctx, "getCommentsCount", campaignID)
}

// CommentAt reads one comment by insertion index.
func (c *Client) CommentAt(ctx context.Context, campaignID, index uint64) (*domain.Comment, error) {
	out, err := c.call(ctx, "getComment", new(big.Int).SetUint64(campaignID), new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	if err := expectOutputs("getComment", out, 4); err != nil {
		return nil, err
	}
	return &domain.Comment{
		CampaignID: campaignID,
		Author:     toAddress(out[0]),
		Text:       toString(out[1]),
		Anonymous:  toBool(out[2]),
		Timestamp:  toBig(out[3]).Int64(),
	}, nil
}

func (c *Client) countOf(ctx context.Context, method string, campaignID uint64) (uint64, error) {
	out, err := c.call(ctx, method, new(big.Int).SetUint64(campaignID))
	if err != nil {
		return 0, err
	}
	if err := expectOutputs(method, out, 1); err != nil {
		return 0, err
	}
	return toBig(out[0]).Uint64(), nil
}

// expectOutputs guards against a malformed (truncated) response, which is a
// remote failure, not a programming error.
func expectOutputs(method string, out []interface{}, n int) error {
	if len(out) < n {
		return apperror.ErrRemoteCallFailed(method, fmt.Errorf("malformed response: got %d values, want %d", len(out), n))
	}
	return nil
}

func toBig(v interface{}) *big.Int {
	return *abi.ConvertType(v, new(*big.Int)).(**big.Int)
}

func toAddress(v interface{}) common.Address {
	return *abi.ConvertType(v, new(common.Address)).(*common.Address)
}

func toString(v interface{}) string {
	return *abi.ConvertType(v, new(string)).(*string)
}

func toBool(v interface{}) bool {
	return *abi.ConvertType(v, new(bool)).(*bool)
}
