package watson

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCredentials(t *testing.T) {
	t.Run("from credentials file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "ibm-credentials.env")
		content := "ASSISTANT_APIKEY=file-key\nASSISTANT_URL=https://file.example.test\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write credentials file: %v", err)
		}
		t.Setenv("IBM_CREDENTIALS_FILE", path)

		creds, err := LoadCredentials("assistant")
		if err != nil {
			t.Fatalf("LoadCredentials failed: %v", err)
		}
		if creds.APIKey != "file-key" {
			t.Errorf("expected file-key, got %q", creds.APIKey)
		}
		if creds.URL != "https://file.example.test" {
			t.Errorf("unexpected URL %q", creds.URL)
		}
	})

	t.Run("environment wins over file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "ibm-credentials.env")
		if err := os.WriteFile(path, []byte("SPEECH_TO_TEXT_APIKEY=file-key\n"), 0o600); err != nil {
			t.Fatalf("write credentials file: %v", err)
		}
		t.Setenv("IBM_CREDENTIALS_FILE", path)
		t.Setenv("SPEECH_TO_TEXT_APIKEY", "env-key")

		creds, err := LoadCredentials("speech_to_text")
		if err != nil {
			t.Fatalf("LoadCredentials failed: %v", err)
		}
		if creds.APIKey != "env-key" {
			t.Errorf("expected env-key, got %q", creds.APIKey)
		}
	})

	t.Run("environment only", func(t *testing.T) {
		t.Setenv("IBM_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("ASSISTANT_USERNAME", "u")
		t.Setenv("ASSISTANT_PASSWORD", "p")

		creds, err := LoadCredentials("assistant")
		if err != nil {
			t.Fatalf("LoadCredentials failed: %v", err)
		}
		auth, err := creds.Authenticator()
		if err != nil {
			t.Fatalf("Authenticator failed: %v", err)
		}
		if _, ok := auth.(*BasicAuthenticator); !ok {
			t.Errorf("expected BasicAuthenticator, got %T", auth)
		}
	})
}

func TestCredentialsAuthenticatorPrecedence(t *testing.T) {
	creds := &Credentials{
		APIKey:      "key",
		BearerToken: "tok",
		Username:    "u",
		Password:    "p",
	}
	auth, err := creds.Authenticator()
	if err != nil {
		t.Fatalf("Authenticator failed: %v", err)
	}
	if _, ok := auth.(*IAMAuthenticator); !ok {
		t.Errorf("expected IAM to win, got %T", auth)
	}

	empty := &Credentials{}
	if _, err := empty.Authenticator(); err == nil {
		t.Error("expected error for empty credentials")
	}
}
