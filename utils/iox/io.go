package iox

import (
	"fmt"
	"os"
)

func ReadFile(filepath string) ([]byte, error) {
	bytes, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return bytes, nil
}

func WriteBytesToFile(filepath string, bytes []byte) error {
	return os.WriteFile(filepath, bytes, 0644)
}

// FileExists reports whether filepath names an existing regular file.
func FileExists(filepath string) bool {
	info, err := os.Stat(filepath)
	return err == nil && !info.IsDir()
}
