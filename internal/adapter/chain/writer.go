package chain

import (
	"context"
	"fmt"
	"math/big"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// transact submits exactly one signed transaction and awaits exactly one
// confirmation. Monetary operations are never retried: any failure surfaces
// as a typed error and the caller decides what to tell the operator.
func (c *Client) transact(ctx context.Context, method string, value *big.Int, args ...interface{}) (*domain.TxReceipt, error) {
	opts := *c.signer // shallow copy; the shared transactor is never mutated
	opts.Context = ctx
	if value != nil {
		opts.Value = value
	}

	tx, err := c.contract.Transact(&opts, method, args...)
	if err != nil {
		return nil, apperror.ErrRemoteCallFailed(method, err)
	}

	c.log.Info().
		Str("method", method).
		Str("tx_hash", tx.Hash().Hex()).
		Msg("transaction submitted, awaiting confirmation")

	waitCtx := ctx
	if c.confirmTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.confirmTimeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(waitCtx, c.eth, tx)
	if err != nil {
		return nil, apperror.ErrRemoteCallFailed(method, fmt.Errorf("awaiting confirmation of %s: %w", tx.Hash().Hex(), err))
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, apperror.ErrRemoteCallFailed(method, fmt.Errorf("transaction %s reverted", tx.Hash().Hex()))
	}

	return &domain.TxReceipt{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// CreateCampaign submits createCampaign and awaits confirmation.
func (c *Client) CreateCampaign(ctx context.Context, p ports.CreateCampaignParams) (*domain.TxReceipt, error) {
	return c.transact(ctx, "createCampaign", nil,
		p.Title, p.Description, p.Media, p.Location, p.TargetAmount, p.Wallet)
}

// Donate submits a payable donate carrying the amount as tx value.
func (c *Client) Donate(ctx context.Context, campaignID uint64, amount *big.Int) (*domain.TxReceipt, error) {
	return c.transact(ctx, "donate", amount, new(big.Int).SetUint64(campaignID))
}

// Disburse pays out from the contract balance to a recipient.
func (c *Client) Disburse(ctx context.Context, campaignID uint64, recipient common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	return c.transact(ctx, "disburseFromContract", nil,
		new(big.Int).SetUint64(campaignID), recipient, amount)
}

// SetCampaignActive toggles a campaign's active flag.
func (c *Client) SetCampaignActive(ctx context.Context, campaignID uint64, active bool) (*domain.TxReceipt, error) {
	return c.transact(ctx, "setCampaignActive", nil, new(big.Int).SetUint64(campaignID), active)
}

// SetAdmin grants or revokes admin rights for an address.
func (c *Client) SetAdmin(ctx context.Context, addr common.Address, allowed bool) (*domain.TxReceipt, error) {
	return c.transact(ctx, "setAdmin", nil, addr, allowed)
}

// AddComment appends a comment to a campaign.
func (c *Client) AddComment(ctx context.Context, campaignID uint64, text string, anonymous bool) (*domain.TxReceipt, error) {
	return c.transact(ctx, "addComment", nil, new(big.Int).SetUint64(campaignID), text, anonymous)
}

// Like records a like for a campaign.
func (c *Client) Like(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error) {
	return c.transact(ctx, "like", nil, new(big.Int).SetUint64(campaignID))
}

// Unlike removes a like from a campaign.
func (c *Client) Unlike(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error) {
	return c.transact(ctx, "unlike", nil, new(big.Int).SetUint64(campaignID))
}
