package endpoint

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// KeyValidator checks that key text is a usable secp256k1 private key
type KeyValidator struct{}

// NewKeyValidator creates a new key validator
func NewKeyValidator() *KeyValidator {
	return &KeyValidator{}
}

// ParseCredential accepts 64 hex characters with or without a 0x prefix
func (v *KeyValidator) ParseCredential(raw string) (*domain.Credential, error) {
	normalized, ok := domain.NormalizePrivateKey(raw)
	if !ok {
		return nil, fmt.Errorf("%w: expected 64 hex characters", domain.ErrInvalidPrivateKey)
	}
	if _, err := crypto.HexToECDSA(strings.TrimPrefix(normalized, "0x")); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPrivateKey, err)
	}
	return domain.NewCredential(normalized), nil
}

// Address derives the checksummed account address of a credential
func (v *KeyValidator) Address(cred *domain.Credential) (string, error) {
	if cred == nil {
		return "", fmt.Errorf("%w: no credential", domain.ErrInvalidPrivateKey)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cred.Reveal(), "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidPrivateKey, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

var _ usecase.CredentialValidator = (*KeyValidator)(nil)
