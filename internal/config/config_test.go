package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "BASE_URL", "LOG_LEVEL", "LOG_FORMAT", "DATABASE_URL", "AUTO_MIGRATE", "DECK_SEED"} {
		t.Setenv(k, "")
	}
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != 8080 || c.LogLevel != "info" || c.LogFormat != "console" || c.AutoMigrate || c.DeckSeed != 0 {
		t.Errorf("defaults = %+v", c)
	}
	if got := c.JoinURL("example.com:8080", "abc"); got != "http://example.com:8080/?table=abc" {
		t.Errorf("JoinURL = %s", got)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://cards.example/")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("AUTO_MIGRATE", "yes")
	t.Setenv("DECK_SEED", "42")

	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != 9000 || !c.AutoMigrate || c.DeckSeed != 42 || c.LogFormat != "json" {
		t.Errorf("config = %+v", c)
	}
	if got := c.JoinURL("ignored", "abc"); got != "https://cards.example/?table=abc" {
		t.Errorf("JoinURL = %s", got)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct{ key, val string }{
		{"DECK_SEED", "-1"},
		{"LOG_FORMAT", "xml"},
		{"PORT", "70000"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("LOG_FORMAT", "")
			t.Setenv("DECK_SEED", "")
			t.Setenv(tt.key, tt.val)
			if _, err := FromEnv(); err == nil {
				t.Errorf("%s=%s should fail", tt.key, tt.val)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	c := Config{LogLevel: "debug", LogFormat: "json"}
	l, err := c.NewLogger()
	if err != nil {
		t.Fatal(err)
	}
	if !l.Core().Enabled(-1) {
		t.Error("debug should be enabled")
	}

	c.LogLevel = "loud"
	if _, err := c.NewLogger(); err == nil {
		t.Error("bad level should fail")
	}
}
