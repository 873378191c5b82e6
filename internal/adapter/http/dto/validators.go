package dto

import (
	"math/big"
	"strconv"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_addr", validateEthAddr)
	}
}

// validateEthAddr accepts a checksummed or lowercase 0x address.
func validateEthAddr(fl validator.FieldLevel) bool {
	return common.IsHexAddress(fl.Field().String())
}

// ParseAddress converts a hex string into an address.
func ParseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, apperror.Validation("invalid address: " + raw)
	}
	return common.HexToAddress(raw), nil
}

// ParseAmount converts a decimal ether string into exact wei. Sub-wei
// precision and non-positive values are rejected.
func ParseAmount(raw string) (*big.Int, error) {
	wei, err := domain.ParseEther(raw)
	if err != nil {
		return nil, apperror.Validation("invalid amount: " + raw)
	}
	if wei.Sign() <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}
	return wei, nil
}

// ParseCampaignID converts a path parameter into a campaign id. Ids start
// at 1; zero never names a campaign.
func ParseCampaignID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("invalid campaign id: " + raw)
	}
	return id, nil
}
