package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager hands out per-run export paths under a base directory,
// so repeated runs never clobber each other's files.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates an output manager rooted at baseOutputDir.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateRunOutputDir creates (if needed) and returns the directory for
// one run's exports.
func (om *OutputManager) CreateRunOutputDir(runID string) (string, error) {
	runDir := filepath.Join(om.BaseOutputDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return runDir, nil
}

// OutputFilePath returns the full path for one of a run's export files.
// The file name is flattened to its base so callers cannot escape the
// run directory.
func (om *OutputManager) OutputFilePath(runID, fileName string) (string, error) {
	runDir, err := om.CreateRunOutputDir(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(runDir, filepath.Base(fileName)), nil
}
