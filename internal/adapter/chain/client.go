package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"charity-ledger-gateway/config"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Client is the remote ledger client: one RPC connection bound to one
// deployed contract. It implements ports.Ledger.
type Client struct {
	eth            *ethclient.Client
	contract       *bind.BoundContract
	schema         *abi.ABI
	address        common.Address
	signer         *bind.TransactOpts
	account        common.Address
	chainID        *big.Int
	confirmTimeout time.Duration
	log            zerolog.Logger
}

// Connector dials the node and binds the contract per configuration. It
// implements ports.LedgerConnector so session state stays testable.
type Connector struct {
	cfg    config.ChainConfig
	schema *abi.ABI
	log    zerolog.Logger
}

// NewConnector creates a Connector around a pre-validated schema.
func NewConnector(cfg config.ChainConfig, schema *abi.ABI, log zerolog.Logger) *Connector {
	return &Connector{cfg: cfg, schema: schema, log: log}
}

// Connect dials the RPC endpoint, verifies that bytecode exists at the
// contract address, loads the signer key and reports the connected chain.
// A chain id differing from the configured target is NOT an error here —
// the session layer records it and gates writes.
func (c *Connector) Connect(ctx context.Context) (ports.Ledger, *ports.ConnectionInfo, error) {
	if c.cfg.ContractAddress == "" || !common.IsHexAddress(c.cfg.ContractAddress) {
		return nil, nil, apperror.Validation("chain.contract_address is missing or not a hex address")
	}

	eth, err := ethclient.DialContext(ctx, c.cfg.RPCURL)
	if err != nil {
		return nil, nil, apperror.ErrRemoteCallFailed("dial", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, nil, apperror.ErrRemoteCallFailed("chainId", err)
	}

	address := common.HexToAddress(c.cfg.ContractAddress)
	code, err := eth.CodeAt(ctx, address, nil)
	if err != nil {
		eth.Close()
		return nil, nil, apperror.ErrRemoteCallFailed("getCode", err)
	}
	if len(code) == 0 {
		eth.Close()
		return nil, nil, apperror.ErrContractMissing(address.Hex())
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(c.cfg.PrivateKey, "0x"))
	if err != nil {
		eth.Close()
		return nil, nil, apperror.Validation("chain.private_key is not a valid secp256k1 key")
	}

	// Sign for the chain we actually landed on; the write path is gated
	// separately when that chain is not the target.
	signer, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		eth.Close()
		return nil, nil, apperror.InternalError(fmt.Errorf("building transactor: %w", err))
	}

	client := &Client{
		eth:            eth,
		contract:       bind.NewBoundContract(address, *c.schema, eth, eth, eth),
		schema:         c.schema,
		address:        address,
		signer:         signer,
		account:        signer.From,
		chainID:        chainID,
		confirmTimeout: c.cfg.ConfirmTimeout,
		log:            c.log.With().Str("component", "chain").Logger(),
	}

	client.log.Info().
		Str("contract", address.Hex()).
		Str("account", signer.From.Hex()).
		Int64("chain_id", chainID.Int64()).
		Msg("ledger client connected")

	return client, &ports.ConnectionInfo{
		Account: signer.From,
		ChainID: chainID.Int64(),
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// call executes a single read against the contract.
func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.contract.Call(opts, &out, method, args...); err != nil {
		return nil, apperror.ErrRemoteCallFailed(method, err)
	}
	return out, nil
}
