package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("DODGER_TEST_VALUE", "x")
	if got := GetEnv("DODGER_TEST_VALUE", "y"); got != "x" {
		t.Errorf("got %q, want %q", got, "x")
	}
	if got := GetEnv("DODGER_TEST_UNSET", "y"); got != "y" {
		t.Errorf("got %q, want %q", got, "y")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"number", "30", 30},
		{"negative", "-2", -2},
		{"garbage", "fast", 7},
		{"empty", "", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DODGER_TEST_INT", tt.value)
			if got := GetEnvInt("DODGER_TEST_INT", 7); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("DODGER_TEST_SEED", "9007199254740993")
	if got := GetEnvInt64("DODGER_TEST_SEED", 1); got != 9007199254740993 {
		t.Errorf("got %d, want 9007199254740993", got)
	}
	t.Setenv("DODGER_TEST_SEED", "1.5")
	if got := GetEnvInt64("DODGER_TEST_SEED", 1); got != 1 {
		t.Errorf("got %d, want fallback 1", got)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("DODGER_FPS", "0")
	t.Setenv("DODGER_SEED", "42")
	t.Setenv("SSH_PORT", "2323")

	s := Load()
	if s.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", s.FPS, DefaultFPS)
	}
	if s.Seed != 42 {
		t.Errorf("Seed = %d, want 42", s.Seed)
	}
	if s.SSHPort != "2323" {
		t.Errorf("SSHPort = %q, want 2323", s.SSHPort)
	}
}
