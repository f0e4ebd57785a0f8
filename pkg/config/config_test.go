package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sdejongh/reconorris/pkg/compare"
)

// TestDefault verifies the built-in configuration is valid
func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
	if !cfg.Comparison.CheckLength {
		t.Error("default should enable the length check")
	}
	if cfg.Comparison.SizeTolerance != compare.DefaultSizeTolerance {
		t.Errorf("SizeTolerance = %d, want %d", cfg.Comparison.SizeTolerance, compare.DefaultSizeTolerance)
	}
	if cfg.Output.Format != "human" {
		t.Errorf("Output.Format = %s, want human", cfg.Output.Format)
	}
}

// TestComparisonOptions verifies the conversion to comparison options
func TestComparisonOptions(t *testing.T) {
	c := ComparisonConfig{
		CheckLength:             true,
		CheckFullContent:        true,
		PartialContentMaxLength: 4096,
		SizeTolerance:           12,
	}

	opts := c.Options()
	if !opts.CheckLength || !opts.CheckFullContent {
		t.Error("flags should carry over")
	}
	if opts.PartialContentMaxLength != 4096 {
		t.Errorf("PartialContentMaxLength = %d, want 4096", opts.PartialContentMaxLength)
	}
	if opts.SizeTolerance != 12 {
		t.Errorf("SizeTolerance = %d, want 12", opts.SizeTolerance)
	}
}

// TestValidate tests configuration validation
func TestValidate(t *testing.T) {
	valid := func() *Config { return Default() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"ValidWithJob", func(c *Config) {
			c.Jobs = []JobConfig{{Name: "nightly", Source: "/src", Target: "/tgt"}}
		}, false},
		{"JobMissingSource", func(c *Config) {
			c.Jobs = []JobConfig{{Name: "broken", Target: "/tgt"}}
		}, true},
		{"JobMissingTarget", func(c *Config) {
			c.Jobs = []JobConfig{{Source: "/src"}}
		}, true},
		{"NegativePartialLength", func(c *Config) {
			c.Comparison.PartialContentMaxLength = -1
		}, true},
		{"PartialEnabledWithoutLength", func(c *Config) {
			c.Comparison.CheckPartialContent = true
			c.Comparison.PartialContentMaxLength = 0
		}, true},
		{"NegativeTolerance", func(c *Config) {
			c.Comparison.SizeTolerance = -5
		}, true},
		{"NegativeBandwidth", func(c *Config) {
			c.Execution.BandwidthLimit = -1
		}, true},
		{"BadOutputFormat", func(c *Config) {
			c.Output.Format = "xml"
		}, true},
		{"BadLogFormat", func(c *Config) {
			c.Logging.Format = "csv"
		}, true},
		{"BadLogLevel", func(c *Config) {
			c.Logging.Level = "verbose"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadFromFile tests YAML loading
func TestLoadFromFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "reconorris-config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Run("ValidFile", func(t *testing.T) {
		content := []byte(`
jobs:
  - name: nightly
    source: /data/source
    target: /data/target
comparison:
  check_length: true
  check_partial_content: true
  partial_content_max_length: 65536
  size_tolerance: 38
execution:
  bandwidth_limit: 1048576
output:
  format: json
  progress: false
logging:
  enabled: true
  format: json
  level: debug
  file: /var/log/reconorris.log
`)
		path := filepath.Join(tempDir, "config.yaml")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}

		if len(cfg.Jobs) != 1 || cfg.Jobs[0].Name != "nightly" {
			t.Errorf("Jobs = %+v, want one job named nightly", cfg.Jobs)
		}
		if cfg.Comparison.PartialContentMaxLength != 65536 {
			t.Errorf("PartialContentMaxLength = %d, want 65536", cfg.Comparison.PartialContentMaxLength)
		}
		if cfg.Comparison.SizeTolerance != 38 {
			t.Errorf("SizeTolerance = %d, want 38", cfg.Comparison.SizeTolerance)
		}
		if cfg.Execution.BandwidthLimit != 1048576 {
			t.Errorf("BandwidthLimit = %d, want 1048576", cfg.Execution.BandwidthLimit)
		}
		if cfg.Output.Format != "json" {
			t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
		}
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		content := []byte("output:\n  format: json\n")
		path := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}

		if cfg.Output.Format != "json" {
			t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
		}
		if cfg.Comparison.SizeTolerance != compare.DefaultSizeTolerance {
			t.Error("unset fields should keep their defaults")
		}
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("jobs: [unclosed"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should fail on malformed YAML")
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		path := filepath.Join(tempDir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("comparison:\n  size_tolerance: -1\n"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should fail validation")
		}
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(tempDir, "missing.yaml")); err == nil {
			t.Error("LoadFromFile() should fail for missing file")
		}
	})
}

// TestSaveToFile tests the save and reload round trip
func TestSaveToFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "reconorris-config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := Default()
	cfg.Jobs = []JobConfig{{Name: "mirror", Source: "/a", Target: "/b"}}
	cfg.Execution.BandwidthLimit = 2048

	path := filepath.Join(tempDir, "sub", "config.yaml")
	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if len(loaded.Jobs) != 1 || loaded.Jobs[0].Name != "mirror" {
		t.Errorf("Jobs = %+v, want the saved job back", loaded.Jobs)
	}
	if loaded.Execution.BandwidthLimit != 2048 {
		t.Errorf("BandwidthLimit = %d, want 2048", loaded.Execution.BandwidthLimit)
	}
}
