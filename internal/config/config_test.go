package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Paypal.URL != "https://www.sandbox.paypal.com/cgi-bin/webscr" {
		t.Fatalf("Paypal.URL = %q", cfg.Paypal.URL)
	}
	if cfg.HTTP.Port != "8080" || cfg.Log.Level != "info" || cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Assets.Prefix != "/assets" {
		t.Fatalf("Assets.Prefix = %q", cfg.Assets.Prefix)
	}
}

func TestLoadFieldsFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paypal.yaml")
	if err := os.WriteFile(path, []byte("business: file@x.com\nitem_name: Hat\ncurrency_code: USD\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PAYPAL_FIELDS_FILE", path)
	t.Setenv("PAYPAL_FIELDS", "currency_code=EUR&a3=3.99")
	t.Setenv("PAYPAL_URL", "https://www.paypal.com/cgi-bin/webscr")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Fields{
		{Name: "business", Value: "file@x.com"},
		{Name: "item_name", Value: "Hat"},
		{Name: "currency_code", Value: "EUR"},
		{Name: "a3", Value: "3.99"},
	}
	if diff := cmp.Diff(want, cfg.Paypal.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if cfg.Paypal.URL != "https://www.paypal.com/cgi-bin/webscr" {
		t.Fatalf("Paypal.URL = %q", cfg.Paypal.URL)
	}
}

func TestLoadMissingFieldsFile(t *testing.T) {
	t.Setenv("PAYPAL_FIELDS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("want error for missing fields file")
	}
}
