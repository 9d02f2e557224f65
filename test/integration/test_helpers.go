package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rsalab/src/utils"
)

const testRadix = 55296

// createTempFile creates a temporary file with given content.
func createTempFile(t *testing.T, name string, content []byte) string {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, name)
	if err := utils.WriteFile(filePath, content); err != nil {
		t.Fatalf("Failed to create temp file %s: %v", filePath, err)
	}
	return filePath
}

// tempOutputPath returns a path under a fresh temp dir without creating
// the file, for operations that write their own output.
func tempOutputPath(t *testing.T, name string) string {
	return filepath.Join(t.TempDir(), name)
}

func assertFileExists(t *testing.T, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Expected file %s to exist, but it doesn't", path)
	}
}

func assertBytesEqual(t *testing.T, expected, actual []byte, context string) {
	if !bytes.Equal(expected, actual) {
		t.Fatalf("%s: Expected %d bytes, got %d bytes. Data mismatch.",
			context, len(expected), len(actual))
	}
}

// TestMain runs global test setup/teardown for the integration suite.
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
