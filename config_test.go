package storefront_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-storefront"
)

func TestConfigValidateRequiresCredentials(t *testing.T) {
	cfg := storefront.DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, storefront.ErrContentCredentialsInvalid) {
		t.Fatalf("expected ErrContentCredentialsInvalid, got %v", err)
	}
}

func TestConfigValidateProviderUnknown(t *testing.T) {
	cfg := storefront.DefaultConfig()
	cfg.Content.Provider = "soap"

	if err := cfg.Validate(); !errors.Is(err, storefront.ErrContentProviderUnknown) {
		t.Fatalf("expected ErrContentProviderUnknown, got %v", err)
	}
}

func TestConfigValidateDefaultLocaleMustBeListed(t *testing.T) {
	cfg := storefront.DefaultConfig()
	cfg.DefaultLocale = "de"

	if err := cfg.Validate(); !errors.Is(err, storefront.ErrDefaultLocaleUnsupported) {
		t.Fatalf("expected ErrDefaultLocaleUnsupported, got %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CONTENTFUL_SPACE_ID", "space")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "token")
	t.Setenv("STOREFRONT_CONTENT_PROVIDER", "rest")

	cfg, err := storefront.ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Content.Provider != storefront.ProviderREST || cfg.Content.SpaceID != "space" {
		t.Fatalf("unexpected content config %+v", cfg.Content)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
