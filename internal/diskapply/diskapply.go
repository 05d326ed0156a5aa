// Package diskapply writes a slice/inline result back to disk atomically,
// as a CLI convenience around internal/engine's in-memory operations.
//
// Grounded on termfx-morfx's core/atomicwriter.go: write to a temp file in
// the same directory, fsync if asked, then rename over the original so a
// reader never observes a partially-written file. The cross-process lock
// file machinery in the teacher's version exists because its MCP server
// can have several staged writers targeting the same path concurrently;
// sce's CLI applies one result to one file per invocation, so that
// machinery is dropped rather than adapted (see DESIGN.md).
package diskapply

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config controls how Apply writes a file.
type Config struct {
	UseFsync       bool   // force fsync before the rename for durability
	TempSuffix     string // suffix appended to the temp file path
	BackupOriginal bool   // copy the original aside before overwriting
}

// DefaultConfig matches the teacher's defaults: no fsync, always backup.
func DefaultConfig() Config {
	return Config{
		UseFsync:       false,
		TempSuffix:     ".sce.tmp",
		BackupOriginal: true,
	}
}

// Apply atomically replaces path's content with content, honoring cfg.
func Apply(path, content string, cfg Config) error {
	info, statErr := os.Stat(path)
	mode := os.FileMode(0o644)
	if statErr == nil {
		mode = info.Mode()
	}

	if cfg.BackupOriginal && statErr == nil {
		if err := backup(path); err != nil {
			return fmt.Errorf("backing up %s: %w", path, err)
		}
	}

	tempPath := path + cfg.TempSuffix
	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if cfg.UseFsync {
		if err := tempFile.Sync(); err != nil {
			tempFile.Close()
			os.Remove(tempPath)
			return fmt.Errorf("syncing %s: %w", path, err)
		}
	}
	tempFile.Close()

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func backup(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	perm := info.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}

	backupPath := fmt.Sprintf("%s.bak.%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, content, perm); err != nil {
		return err
	}
	return os.Chmod(backupPath, perm)
}

// EnsureParentDir creates the parent directory of path if it doesn't
// already exist, matching the teacher's directory bootstrap in
// db.Connect for file-based targets.
func EnsureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
