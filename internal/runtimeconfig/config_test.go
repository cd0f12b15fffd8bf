package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-storefront/internal/runtimeconfig"
)

func validConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.SpaceID = "space"
	cfg.Content.AccessToken = "token"
	return cfg
}

func TestConfigValidate_AcceptsDefaultsWithCredentials(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresCredentials(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrContentCredentialsInvalid) {
		t.Fatalf("expected ErrContentCredentialsInvalid, got %v", err)
	}
}

func TestConfigValidate_PreviewRequiresPreviewToken(t *testing.T) {
	cfg := validConfig()
	cfg.Content.Preview = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrContentCredentialsInvalid) {
		t.Fatalf("expected ErrContentCredentialsInvalid, got %v", err)
	}

	cfg.Content.PreviewToken = "preview"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected preview config to validate, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownContentProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Content.Provider = "soap"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrContentProviderUnknown) {
		t.Fatalf("expected ErrContentProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_DefaultLocaleMustBeSupported(t *testing.T) {
	cfg := validConfig()
	cfg.DefaultLocale = "de"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDefaultLocaleUnsupported) {
		t.Fatalf("expected ErrDefaultLocaleUnsupported, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestFromEnvOverlaysDefaults(t *testing.T) {
	t.Setenv("CONTENTFUL_SPACE_ID", "space-1")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "token-1")
	t.Setenv("STOREFRONT_CONTENT_PROVIDER", "rest")
	t.Setenv("STOREFRONT_LOCALES", "pl,en")
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "5s")

	cfg, err := runtimeconfig.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Content.SpaceID != "space-1" || cfg.Content.AccessToken != "token-1" {
		t.Fatalf("expected credentials from env, got %+v", cfg.Content)
	}
	if cfg.Content.NormalizedProvider() != runtimeconfig.ProviderREST {
		t.Fatalf("expected rest provider, got %q", cfg.Content.Provider)
	}
	if len(cfg.Locales) != 2 || cfg.Locales[1] != "en" {
		t.Fatalf("expected locales from env, got %v", cfg.Locales)
	}
	if cfg.Content.HTTPTimeout != 5*time.Second {
		t.Fatalf("expected timeout 5s, got %v", cfg.Content.HTTPTimeout)
	}
	if cfg.Content.Environment != "master" {
		t.Fatalf("expected default environment to survive, got %q", cfg.Content.Environment)
	}
	if cfg.AppName != "Nordeco Store" {
		t.Fatalf("expected default app name, got %q", cfg.AppName)
	}
}
