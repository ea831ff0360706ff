package checks

import "testing"

func TestDetectToolchain(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		want     string
		detected bool
	}{
		{"rust", map[string]string{"Cargo.toml": ""}, "rust", true},
		{"go", map[string]string{"go.mod": ""}, "go", true},
		{"node", map[string]string{"package.json": ""}, "node", true},
		{"python pyproject", map[string]string{"pyproject.toml": ""}, "python", true},
		{"python setup", map[string]string{"setup.py": ""}, "python", true},
		{"rust wins over go", map[string]string{"Cargo.toml": "", "go.mod": ""}, "rust", true},
		{"nothing", map[string]string{"README.md": ""}, "", false},
		{"manifest in subdir does not count", map[string]string{"sub/Cargo.toml": ""}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := writeProject(t, tt.files)
			tc, ok := DetectToolchain(ref.RootPath)
			if ok != tt.detected {
				t.Fatalf("detected = %t, want %t", ok, tt.detected)
			}
			if ok && tc.Name != tt.want {
				t.Errorf("Name = %q, want %q", tc.Name, tt.want)
			}
		})
	}
}
