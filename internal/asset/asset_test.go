package asset

import (
	"errors"
	"testing"
)

func TestResolverAssetPath(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		host   string
		asset  string
		want   string
	}{
		{name: "relative", prefix: "/assets", asset: "logo.png", want: "/assets/logo.png"},
		{name: "nested", prefix: "assets/", asset: "img/logo.png", want: "/assets/img/logo.png"},
		{name: "cdn host", prefix: "/static", host: "https://cdn.example/", asset: "logo.png", want: "https://cdn.example/static/logo.png"},
		{name: "root prefix", prefix: "/", asset: "logo.png", want: "/logo.png"},
		{name: "absolute url", prefix: "/assets", asset: "https://www.paypalobjects.com/en_US/i/btn/btn_subscribe_LG.gif", want: "https://www.paypalobjects.com/en_US/i/btn/btn_subscribe_LG.gif"},
		{name: "root relative", prefix: "/assets", asset: "/images/logo.png", want: "/images/logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewResolver(tt.prefix, tt.host).AssetPath(tt.asset)
			if err != nil {
				t.Fatalf("AssetPath: %v", err)
			}
			if got != tt.want {
				t.Fatalf("AssetPath(%q) = %q, want %q", tt.asset, got, tt.want)
			}
		})
	}
}

func TestResolverEmptyName(t *testing.T) {
	if _, err := NewResolver("/assets", "").AssetPath(""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("got %v, want %v", err, ErrEmptyName)
	}
}
