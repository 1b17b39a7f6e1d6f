package config

import "testing"

func validConfig() *Config {
	return &Config{
		AliOss: AliOss{Bucket: "detox-bucket"},
		MySQL:  MySQL{Database: "ghibli_detox"},
		OpenAI: OpenAI{Token: "sk-test"},
	}
}

func TestVerifyDefaults(t *testing.T) {
	c := validConfig()
	if err := c.Verify(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.URLExpires != "24h" {
		t.Fatalf("expected default url_expires 24h, got %s", c.URLExpires)
	}
	if c.DailyQuota != 3 {
		t.Fatalf("expected default daily quota 3, got %d", c.DailyQuota)
	}
	if c.OpenAI.VisionModel != "gpt-4o" {
		t.Fatalf("expected default vision model, got %s", c.OpenAI.VisionModel)
	}
	if c.OpenAI.ImageModel != "dall-e-3" {
		t.Fatalf("expected default image model, got %s", c.OpenAI.ImageModel)
	}
}

func TestVerifyRejectsIncomplete(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing bucket", func(c *Config) { c.AliOss.Bucket = "" }},
		{"missing database", func(c *Config) { c.MySQL.Database = "" }},
		{"missing token", func(c *Config) { c.OpenAI.Token = "" }},
		{"bad url_expires", func(c *Config) { c.URLExpires = "soon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(c)
			if err := c.Verify(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("MAX_DEGHIBS_PER_DAY", "9")
	c := validConfig()
	c.applyEnv()
	if c.OpenAI.Token != "sk-env" {
		t.Fatalf("env token not applied")
	}
	if c.DailyQuota != 9 {
		t.Fatalf("env quota not applied, got %d", c.DailyQuota)
	}
}

func TestURLExpiresDuration(t *testing.T) {
	c := &Config{URLExpires: "30m"}
	if c.URLExpiresDuration().Minutes() != 30 {
		t.Fatalf("unexpected duration: %v", c.URLExpiresDuration())
	}
}
