package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// ListKeys lists keystore keys with their derived addresses
type ListKeys struct {
	keystore KeystoreSource
}

// NewListKeys creates a new ListKeys use case
func NewListKeys(keystore KeystoreSource) *ListKeys {
	return &ListKeys{keystore: keystore}
}

// Run executes the listing
func (uc *ListKeys) Run(ctx context.Context) ([]domain.KeyInfo, error) {
	keys, err := uc.keystore.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}
