package checks

import (
	"os"
	"path/filepath"
)

// Toolchain describes how to build and test an exercise project.
type Toolchain struct {
	// Name is the detected project type (rust, go, node, python).
	Name string
	// Manifest is the package manifest file that identified the project.
	Manifest string
	// BuildCmd is the build command as argv.
	BuildCmd []string
	// TestCmd is the test command as argv.
	TestCmd []string
}

// DetectToolchain inspects a project root and returns the matching
// toolchain. The learning path is Rust-first, so Cargo.toml wins when
// several manifests are present. Unknown projects return ok=false and
// build/test checks fail with a clear environment diagnostic.
func DetectToolchain(root string) (Toolchain, bool) {
	if fileInRoot(root, "Cargo.toml") {
		return Toolchain{
			Name:     "rust",
			Manifest: "Cargo.toml",
			BuildCmd: []string{"cargo", "check", "--quiet"},
			TestCmd:  []string{"cargo", "test", "--quiet"},
		}, true
	}
	if fileInRoot(root, "go.mod") {
		return Toolchain{
			Name:     "go",
			Manifest: "go.mod",
			BuildCmd: []string{"go", "build", "./..."},
			TestCmd:  []string{"go", "test", "./..."},
		}, true
	}
	if fileInRoot(root, "package.json") {
		return Toolchain{
			Name:     "node",
			Manifest: "package.json",
			BuildCmd: []string{"npm", "run", "build"},
			TestCmd:  []string{"npm", "test"},
		}, true
	}
	if fileInRoot(root, "pyproject.toml") || fileInRoot(root, "setup.py") {
		manifest := "pyproject.toml"
		if !fileInRoot(root, "pyproject.toml") {
			manifest = "setup.py"
		}
		return Toolchain{
			Name:     "python",
			Manifest: manifest,
			BuildCmd: []string{"python", "-m", "compileall", "-q", "."},
			TestCmd:  []string{"pytest"},
		}, true
	}
	return Toolchain{}, false
}

// fileInRoot reports whether a regular file exists directly under root.
func fileInRoot(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	return err == nil && info.Mode().IsRegular()
}
