package endpoint

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

const (
	keyFileExt = ".pk"
	// defaultKeyName is the key file the network CLI creates for its own use
	defaultKeyName = "key"
)

// Keystore scans the network CLI key directory (<home>/key/*.pk)
type Keystore struct {
	dir       string
	validator *KeyValidator
	log       *slog.Logger
}

// NewKeystore creates a keystore source rooted at the network CLI home directory
func NewKeystore(cfg *config.RuntimeConfig, validator *KeyValidator, log *slog.Logger) *Keystore {
	return &Keystore{
		dir:       filepath.Join(cfg.AvalancheHome, "key"),
		validator: validator,
		log:       log.With("component", "Keystore"),
	}
}

type keyFile struct {
	name    string
	path    string
	modTime time.Time
}

// Candidates returns key files in preference order: the file named after the subnet, then the
// CLI's default key, then every other key file newest first. Contents are not validated.
func (k *Keystore) Candidates(ctx context.Context, subnet string) ([]usecase.KeyCandidate, error) {
	files, err := k.scan()
	if err != nil {
		return nil, err
	}

	rank := func(f keyFile) int {
		switch f.name {
		case subnet:
			return 0
		case defaultKeyName:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		ri, rj := rank(files[i]), rank(files[j])
		if ri != rj {
			return ri < rj
		}
		if !files[i].modTime.Equal(files[j].modTime) {
			return files[i].modTime.After(files[j].modTime)
		}
		return files[i].name < files[j].name
	})

	candidates := make([]usecase.KeyCandidate, 0, len(files))
	for _, f := range files {
		if ctx.Err() != nil {
			return candidates, ctx.Err()
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			k.log.Debug("skipping unreadable key file", "path", f.path, "error", err)
			continue
		}
		candidates = append(candidates, usecase.KeyCandidate{
			Name: f.name,
			File: f.path,
			Raw:  strings.TrimSpace(string(data)),
		})
	}
	return candidates, nil
}

// ListKeys returns every valid key with its derived address, sorted by name.
// Files that do not hold a valid key are skipped.
func (k *Keystore) ListKeys(ctx context.Context) ([]domain.KeyInfo, error) {
	files, err := k.scan()
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	keys := make([]domain.KeyInfo, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			k.log.Debug("skipping unreadable key file", "path", f.path, "error", err)
			continue
		}
		cred, err := k.validator.ParseCredential(string(data))
		if err != nil {
			k.log.Debug("skipping invalid key file", "path", f.path, "error", err)
			continue
		}
		addr, err := k.validator.Address(cred)
		if err != nil {
			continue
		}
		keys = append(keys, domain.KeyInfo{Name: f.name, Address: addr, File: f.path})
	}
	return keys, nil
}

func (k *Keystore) scan() ([]keyFile, error) {
	entries, err := os.ReadDir(k.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []keyFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != keyFileExt {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, keyFile{
			name:    strings.TrimSuffix(entry.Name(), keyFileExt),
			path:    filepath.Join(k.dir, entry.Name()),
			modTime: info.ModTime(),
		})
	}
	return files, nil
}

var _ usecase.KeystoreSource = (*Keystore)(nil)
