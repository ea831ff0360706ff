package checks

import "testing"

func TestCheckReadiness(t *testing.T) {
	ready := writeProject(t, map[string]string{
		"Cargo.toml":  "[package]",
		"src/main.rs": "fn main() {}",
	})

	r := CheckReadiness(ready)
	if !r.Ready {
		t.Errorf("complete structure should be ready, score = %v", r.Score)
	}
	if r.Score != 100.0 {
		t.Errorf("Score = %v, want 100", r.Score)
	}
	if len(r.Checks) != 4 {
		t.Errorf("probe count = %d, want 4", len(r.Checks))
	}

	empty := writeProject(t, map[string]string{"notes.txt": ""})
	r = CheckReadiness(empty)
	if r.Ready {
		t.Errorf("bare directory should not be ready, score = %v", r.Score)
	}
	// Only the project directory probe passes: 25%.
	if r.Score != 25.0 {
		t.Errorf("Score = %v, want 25", r.Score)
	}
}
