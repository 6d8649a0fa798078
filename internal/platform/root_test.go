package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindEnvFile(t *testing.T) {
	// Create a temp directory structure
	// /tmp/
	//   project/ (.env)
	//     subdir/
	//       nested/
	//   empty/

	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	subDir := filepath.Join(projectDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(emptyDir, ".env"), 0755); err != nil {
		t.Fatal(err)
	}
	envPath := filepath.Join(projectDir, ".env")
	if err := os.WriteFile(envPath, []byte("GITHUB_OWNER=octo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{"Start at Project", projectDir, envPath, false},
		{"Start in Subdir", subDir, envPath, false},
		{"Start in Nested", nestedDir, envPath, false},
		// A directory named .env is not a match.
		{"Directory Named .env", emptyDir, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindEnvFile(tt.startPath)
			if tt.wantErr {
				// Another .env higher up the real filesystem would be found;
				// only assert we did not stop at the directory.
				if err == nil && got == filepath.Join(emptyDir, ".env") {
					t.Errorf("matched a directory: %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindEnvFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FindEnvFile() = %v, want %v", got, tt.want)
			}
		})
	}
}
