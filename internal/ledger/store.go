// Package ledger - file-backed persistence for the wallet store and the
// transaction log.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the wallet map and the transaction log. The engine holds the
// authoritative in-memory copies; the store only writes snapshots and loads
// them back at startup.
type Store interface {
	LoadWallets() (map[string]float64, error)
	SaveWallets(wallets map[string]float64) error
	LoadLog() (map[string]*Record, error)
	SaveLog(log map[string]*Record) error
}

// FileStore writes both files as human-readable JSON with 2-space indentation.
//
// The wallet store is a direct full-file rewrite. The transaction log is
// written to a temporary sibling file and renamed over the target, so a
// reader (or a restart) never observes a torn log.
type FileStore struct {
	walletPath string
	logPath    string
}

// NewFileStore creates a store writing <prefix>_wallets.json and
// <prefix>_transactions.json under dir.
func NewFileStore(dir, prefix string) *FileStore {
	return &FileStore{
		walletPath: filepath.Join(dir, prefix+"_wallets.json"),
		logPath:    filepath.Join(dir, prefix+"_transactions.json"),
	}
}

// WalletPath returns the wallet store file path.
func (s *FileStore) WalletPath() string { return s.walletPath }

// LogPath returns the transaction log file path.
func (s *FileStore) LogPath() string { return s.logPath }

// LoadWallets reads the wallet store. A missing file is an empty store.
func (s *FileStore) LoadWallets() (map[string]float64, error) {
	wallets := make(map[string]float64)
	if err := loadJSON(s.walletPath, &wallets); err != nil {
		return nil, fmt.Errorf("load wallet store: %w", err)
	}
	return wallets, nil
}

// SaveWallets rewrites the wallet store file in place.
func (s *FileStore) SaveWallets(wallets map[string]float64) error {
	data, err := json.MarshalIndent(wallets, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal wallet store: %w", err)
	}
	if err := os.WriteFile(s.walletPath, data, 0o644); err != nil {
		return fmt.Errorf("write wallet store: %w", err)
	}
	return nil
}

// LoadLog reads the transaction log. A missing file is an empty log.
func (s *FileStore) LoadLog() (map[string]*Record, error) {
	log := make(map[string]*Record)
	if err := loadJSON(s.logPath, &log); err != nil {
		return nil, fmt.Errorf("load transaction log: %w", err)
	}
	return log, nil
}

// SaveLog atomically replaces the transaction log: write to a temp sibling,
// then rename over the target.
func (s *FileStore) SaveLog(log map[string]*Record) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal transaction log: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.logPath), filepath.Base(s.logPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp log: %w", err)
	}
	if err := os.Rename(tmpName, s.logPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace transaction log: %w", err)
	}
	return nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
