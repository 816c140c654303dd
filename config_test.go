package main

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		InhaleSec: 4,
		ExhaleSec: 4,
		Columns:   40,
		LatencyMs: 1000,
		HighHz:    600,
		LowHz:     300,
	}
}

func TestValidateAccepts(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.Tone = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid tone config rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero inhale", func(c *Config) { c.InhaleSec = 0 }, "inhale"},
		{"negative inhale", func(c *Config) { c.InhaleSec = -2 }, "inhale"},
		{"zero exhale", func(c *Config) { c.ExhaleSec = 0 }, "exhale"},
		{"one column", func(c *Config) { c.Columns = 1 }, "columns"},
		{"zero columns", func(c *Config) { c.Columns = 0 }, "columns"},
		{"negative latency", func(c *Config) { c.LatencyMs = -1 }, "latency"},
		{"zero high freq", func(c *Config) { c.Tone = true; c.HighHz = 0 }, "frequencies"},
		{"negative low freq", func(c *Config) { c.Tone = true; c.LowHz = -10 }, "frequencies"},
		{"latency eats phase", func(c *Config) { c.Tone = true; c.InhaleSec = 1; c.LatencyMs = 1000 }, "latency"},
	}
	for _, c := range cases {
		cfg := validConfig()
		c.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: accepted", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}

func TestValidateLatencyIgnoredWithoutTone(t *testing.T) {
	cfg := validConfig()
	cfg.InhaleSec = 1
	cfg.LatencyMs = 5000
	if err := cfg.Validate(); err != nil {
		t.Fatalf("latency should not constrain silent sessions: %v", err)
	}
}
