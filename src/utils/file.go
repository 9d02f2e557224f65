package utils

import "os"

// ReadFile reads the entire contents of a file.
func ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile writes data to a file, creating it if necessary.
func WriteFile(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0644)
}

// GetFileInfo returns os.Stat for filename, used by the check operation
// to report on-disk file sizes.
func GetFileInfo(filename string) (os.FileInfo, error) {
	return os.Stat(filename)
}

// ParseKeyInput parses passphrase input from the CLI, supporting both
// direct strings and @file:path syntax.
func ParseKeyInput(keyInput string) ([]byte, error) {
	if keyInput == "" {
		return nil, nil
	}

	if len(keyInput) > 6 && keyInput[:6] == "@file:" {
		filepath := keyInput[6:]
		return ReadFile(filepath)
	}

	return []byte(keyInput), nil
}
