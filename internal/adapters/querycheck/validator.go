// Package querycheck implements the compile-time query validator.
package querycheck

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// MetadataDir holds the pre-recorded query metadata, one JSON file per
// checked statement.
const MetadataDir = ".queries"

const dialTimeout = 3 * time.Second

var _ ports.QueryValidator = (*Validator)(nil)

// Validator checks the workspace's embedded query statements. In offline
// mode it validates against metadata recorded ahead of time; in online mode
// it needs a reachable database, which the packaging sandbox never has.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// queryMetadata is one recorded statement with its integrity hash.
type queryMetadata struct {
	Query string `json:"query"`
	Hash  string `json:"hash"`
}

// Validate checks the recorded queries. offline selects the mode; root is
// the workspace root; databaseURL is only consulted in online mode.
func (v *Validator) Validate(ctx context.Context, root, databaseURL string, offline bool) error {
	if offline {
		return v.validateOffline(root)
	}
	return v.validateOnline(ctx, databaseURL)
}

// validateOffline verifies every recorded metadata file: present, parseable,
// and hash-consistent with its statement.
func (v *Validator) validateOffline(root string) error {
	dir := filepath.Join(root, MetadataDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrQueryMetadataMissing, "dir", dir)
		}
		return zerr.With(zerr.Wrap(err, "failed to read query metadata"), "dir", dir)
	}

	checked := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := v.checkMetadataFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
		checked++
	}

	if checked == 0 {
		return zerr.With(domain.ErrQueryMetadataMissing, "dir", dir)
	}
	return nil
}

func (v *Validator) checkMetadataFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is rooted in the workspace
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read query metadata file"), "path", path)
	}

	var meta queryMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		err = zerr.With(domain.ErrQueryMetadataMissing, "path", path)
		return zerr.With(err, "reason", "unparseable metadata")
	}

	sum := sha256.Sum256([]byte(meta.Query))
	if hex.EncodeToString(sum[:]) != meta.Hash {
		err := zerr.With(domain.ErrQueryMetadataMissing, "path", path)
		return zerr.With(err, "reason", "hash mismatch")
	}
	return nil
}

// validateOnline dials the database. An unreachable database surfaces as a
// connection-refused-class error; the offline default exists to keep this
// failure out of sandboxed package builds entirely.
func (v *Validator) validateOnline(ctx context.Context, databaseURL string) error {
	addr, err := dialAddr(databaseURL)
	if err != nil {
		return err
	}

	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		wrapped := zerr.With(domain.ErrDatabaseUnreachable, "address", addr)
		return zerr.With(wrapped, "cause", err.Error())
	}
	_ = conn.Close()
	return nil
}

func dialAddr(databaseURL string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil || u.Host == "" {
		return "", zerr.With(zerr.New("invalid database URL"), "url", databaseURL)
	}

	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), "5432")
	}
	return host, nil
}
