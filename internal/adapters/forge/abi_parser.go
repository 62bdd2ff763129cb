package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// artifact is the subset of a compiled contract artifact we read
type artifact struct {
	ABI json.RawMessage `json:"abi"`
}

// ExtractABI returns the ABI of a compiled contract. The artifact is looked up in the output
// directory layouts the toolchain has used, and the ABI must parse as a contract interface.
func (f *ForgeAdapter) ExtractABI(_ context.Context, artifactName string) (json.RawMessage, error) {
	for _, path := range f.artifactPaths(artifactName) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
		}

		var art artifact
		if err := json.Unmarshal(data, &art); err != nil {
			return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
		}
		if len(art.ABI) == 0 || bytes.Equal(art.ABI, []byte("null")) {
			return nil, fmt.Errorf("artifact %s has no abi", path)
		}
		if _, err := abi.JSON(bytes.NewReader(art.ABI)); err != nil {
			return nil, fmt.Errorf("invalid abi in %s: %w", path, err)
		}

		f.log.Debug("extracted abi", "contract", artifactName, "path", path)
		return art.ABI, nil
	}
	return nil, fmt.Errorf("artifact for %s: %w", artifactName, domain.ErrNotFound)
}
