package qmsdk

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:5000/api" {
		t.Errorf("Expected default baseUrl, got %s", cfg.BaseURL)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Expected 30s default timeout, got %s", cfg.Timeout())
	}
}

func TestLoadConfig_ProjectConfig(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	projectConfig := `
baseUrl: http://example.com:8080/api/
timeoutSeconds: 10
`
	os.WriteFile("quizmaster.yaml", []byte(projectConfig), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://example.com:8080/api" {
		t.Errorf("Expected normalized baseUrl without trailing slash, got %s", cfg.BaseURL)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %s", cfg.Timeout())
	}
}

func TestLoadConfig_LocalOverride(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	os.WriteFile("quizmaster.yaml", []byte("baseUrl: http://project.example.com/api\n"), 0644)
	os.MkdirAll(ConfigRoot, 0755)
	os.WriteFile(filepath.Join(ConfigRoot, "config.yaml"), []byte("baseUrl: http://local.example.com/api\n"), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://local.example.com/api" {
		t.Errorf("Expected local override to win, got %s", cfg.BaseURL)
	}
}
