package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

const (
	callTimeout = 5 * time.Second

	// minCodeLength is the byte count deployed code must exceed to count as a live contract
	minCodeLength = 4
)

// CheckerAdapter queries subnet RPC endpoints with ethclient. Every call dials and closes its own
// connection, so no client outlives the request.
type CheckerAdapter struct {
	log *slog.Logger
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter(log *slog.Logger) *CheckerAdapter {
	return &CheckerAdapter{log: log.With("component", "ChainChecker")}
}

// IsLive reports whether contract code is deployed at address. The zero address is never live.
func (c *CheckerAdapter) IsLive(ctx context.Context, rpcURL, address string) (bool, error) {
	if !common.IsHexAddress(address) {
		return false, fmt.Errorf("invalid address %q", address)
	}
	addr := common.HexToAddress(address)
	if addr == (common.Address{}) || strings.EqualFold(address, domain.ZeroAddress) {
		return false, nil
	}

	client, err := c.dial(ctx, rpcURL)
	if err != nil {
		return false, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	code, err := client.CodeAt(ctx, addr, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check code at %s: %w", addr.Hex(), err)
	}

	c.log.Debug("checked contract code", "address", addr.Hex(), "bytes", len(code))
	return len(code) > minCodeLength, nil
}

// ChainID returns the chain id served at rpcURL
func (c *CheckerAdapter) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := c.dial(ctx, rpcURL)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return id.Uint64(), nil
}

func (c *CheckerAdapter) dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("rpc url: %w", domain.ErrMissingEndpoint)
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	return client, nil
}

var _ usecase.ChainChecker = (*CheckerAdapter)(nil)
