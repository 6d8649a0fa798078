package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvFileName is the dotenv file looked up by FindEnvFile.
const EnvFileName = ".env"

// FindEnvFile recursively looks upwards for a .env file.
// If found, returns its absolute path.
func FindEnvFile(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, EnvFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found", EnvFileName)
}
