package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIPort != "8080" {
		t.Fatalf("APIPort = %q", cfg.APIPort)
	}
	if cfg.NATSSubject != "interview.completed" {
		t.Fatalf("NATSSubject = %q", cfg.NATSSubject)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.MaxQuestions != 10 || cfg.BasicQuestionCount != 5 || cfg.TechnicalQuestionCount != 5 {
		t.Fatalf("question plan defaults wrong: %+v", cfg)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MAX_QUESTIONS", "4")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg := Load()

	if cfg.APIPort != "9999" {
		t.Fatalf("APIPort = %q", cfg.APIPort)
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Fatalf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
	if cfg.MaxQuestions != 4 {
		t.Fatalf("MaxQuestions = %d", cfg.MaxQuestions)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
}

func TestLoadFallsBackOnBadInt(t *testing.T) {
	t.Setenv("MAX_QUESTIONS", "not-a-number")

	cfg := Load()
	if cfg.MaxQuestions != 10 {
		t.Fatalf("expected default for invalid int, got %d", cfg.MaxQuestions)
	}
}
