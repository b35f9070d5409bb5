package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// AddressFileWriter writes deployed addresses for downstream tooling. The
// file is only ever written, never read back.
type AddressFileWriter struct {
	projectRoot string
}

// NewAddressFileWriter creates a writer resolving relative paths against the project root
func NewAddressFileWriter(cfg *config.RuntimeConfig) *AddressFileWriter {
	return &AddressFileWriter{projectRoot: cfg.ProjectRoot}
}

// WriteAddress replaces the file at path with the checksummed address
func (w *AddressFileWriter) WriteAddress(ctx context.Context, path string, address common.Address) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.projectRoot, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	// Write to a sibling and rename so readers never see a partial address
	tmp, err := os.CreateTemp(filepath.Dir(path), ".address-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(address.Hex() + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write address: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write address: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write address: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.AddressWriter = (*AddressFileWriter)(nil)
