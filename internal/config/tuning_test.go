package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() tuning failed validation: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Load with no custom path and no local/user configs falls through to
	// the embedded YAML; it must agree with the compiled-in constants.
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", tmpDir)
	defer os.Chdir(oldWd)

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if loaded != Default() {
		t.Errorf("embedded tuning %+v differs from Default() %+v", loaded, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tuning.yaml")

	custom := `
physics:
  gravity: 0.8
  jump_force: -14
  move_speed: 5
  game_speed: 1.5
auto_jump:
  interval_ms: 400
runner:
  radius: 12
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if tuning.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %g, expected 0.8", tuning.Physics.Gravity)
	}
	if tuning.Physics.JumpForce != -14 {
		t.Errorf("jump force = %g, expected -14", tuning.Physics.JumpForce)
	}
	if tuning.AutoJump.IntervalMs != 400 {
		t.Errorf("auto-jump interval = %g, expected 400", tuning.AutoJump.IntervalMs)
	}
}

func TestLoadCustomPathMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/tuning.yaml"); err == nil {
		t.Error("Load() with a missing explicit path should fail, not fall back")
	}
}

func TestLoadRejectsInvalidTuning(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tuning.yaml")

	// Positive jump force would make auto-jumps dive into the ground.
	bad := `
physics:
  gravity: 0.6
  jump_force: 12
  move_speed: 4
  game_speed: 2.0
auto_jump:
  interval_ms: 500
runner:
  radius: 15
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject tuning with positive jump force")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero gravity", func(c *Tuning) { c.Physics.Gravity = 0 }},
		{"positive jump force", func(c *Tuning) { c.Physics.JumpForce = 1 }},
		{"zero move speed", func(c *Tuning) { c.Physics.MoveSpeed = 0 }},
		{"zero game speed", func(c *Tuning) { c.Physics.GameSpeed = 0 }},
		{"zero auto-jump interval", func(c *Tuning) { c.AutoJump.IntervalMs = 0 }},
		{"zero radius", func(c *Tuning) { c.Runner.Radius = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := Default()
			tt.mutate(&tuning)
			if err := tuning.Validate(); err == nil {
				t.Error("Validate() accepted broken tuning")
			}
		})
	}
}
