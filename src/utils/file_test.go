package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadWriteFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "rsalab_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "test.txt")
	testData := []byte("Hello, World!")

	if err := WriteFile(testFile, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	readData, err := ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !bytes.Equal(readData, testData) {
		t.Errorf("File content mismatch: got %s, want %s", readData, testData)
	}
}

func TestGetFileInfo(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "rsalab_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "test.txt")
	testData := []byte("twelve bytes")
	if err := WriteFile(testFile, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := GetFileInfo(testFile)
	if err != nil {
		t.Fatalf("GetFileInfo failed: %v", err)
	}
	if info.Size() != int64(len(testData)) {
		t.Errorf("Size() = %d, want %d", info.Size(), len(testData))
	}
}

func TestParseKeyInput(t *testing.T) {
	result, err := ParseKeyInput("")
	if err != nil {
		t.Errorf("ParseKeyInput(\"\") failed: %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil for empty input, got %v", result)
	}

	testString := "test passphrase"
	result, err = ParseKeyInput(testString)
	if err != nil {
		t.Errorf("ParseKeyInput failed: %v", err)
	}
	if !bytes.Equal(result, []byte(testString)) {
		t.Errorf("String input mismatch: got %s, want %s", result, testString)
	}

	tempDir, err := os.MkdirTemp("", "rsalab_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "keyfile.txt")
	testContent := []byte("file content passphrase")
	if err := os.WriteFile(testFile, testContent, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	result, err = ParseKeyInput("@file:" + testFile)
	if err != nil {
		t.Errorf("ParseKeyInput file failed: %v", err)
	}
	if !bytes.Equal(result, testContent) {
		t.Errorf("File input mismatch: got %s, want %s", result, testContent)
	}

	if _, err := ParseKeyInput("@file:/nonexistent/file"); err == nil {
		t.Errorf("Expected error for non-existent file")
	}
}
