package broadcast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// LatestFile is the name the toolchain gives the artifact of the most recent run
const LatestFile = "run-latest.json"

// Parser locates and parses broadcast artifacts under one broadcast directory
type Parser struct {
	broadcastDir string
}

// NewParser creates a new broadcast file parser
func NewParser(broadcastDir string) *Parser {
	return &Parser{broadcastDir: broadcastDir}
}

// ParseBroadcastFile parses a broadcast file
func (p *Parser) ParseBroadcastFile(file string) (*domain.BroadcastFile, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read broadcast file: %w", err)
	}

	var broadcast domain.BroadcastFile
	if err := json.Unmarshal(data, &broadcast); err != nil {
		return nil, fmt.Errorf("failed to parse broadcast file %s: %w", file, err)
	}

	return &broadcast, nil
}

// LatestPath returns the run-latest artifact for a script and chain. The expected location is
// <broadcast>/<script file>/<chain id>/run-latest.json; when that is missing, the newest
// run-latest.json anywhere below the broadcast directory whose path names the script is used.
func (p *Parser) LatestPath(script string, chainID uint64) (string, error) {
	scriptFile := filepath.Base(script)

	expected := filepath.Join(p.broadcastDir, scriptFile, strconv.FormatUint(chainID, 10), LatestFile)
	if _, err := os.Stat(expected); err == nil {
		return expected, nil
	}

	stem := strings.TrimSuffix(strings.TrimSuffix(scriptFile, ".sol"), ".s")
	var (
		best     string
		bestTime time.Time
	)
	err := filepath.WalkDir(p.broadcastDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || d.Name() != LatestFile {
			return nil
		}
		if rel, err := filepath.Rel(p.broadcastDir, path); err != nil || !strings.Contains(rel, stem) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if best == "" || info.ModTime().After(bestTime) {
			best, bestTime = path, info.ModTime()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search broadcast directory: %w", err)
	}
	if best == "" {
		return "", fmt.Errorf("broadcast file for %s on chain %d: %w", scriptFile, chainID, domain.ErrNotFound)
	}
	return best, nil
}

// ParseLatestBroadcast parses the latest broadcast file for a given script and chain
func (p *Parser) ParseLatestBroadcast(script string, chainID uint64) (*domain.BroadcastFile, string, error) {
	path, err := p.LatestPath(script, chainID)
	if err != nil {
		return nil, "", err
	}
	file, err := p.ParseBroadcastFile(path)
	if err != nil {
		return nil, path, err
	}
	return file, path, nil
}
