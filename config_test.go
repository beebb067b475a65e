package timestamps

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Location != time.Local {
		t.Fatalf("Location = %v, want time.Local", cfg.Location)
	}

	if _, ok := cfg.Parser.(DateParser); !ok {
		t.Fatalf("Parser = %T, want DateParser", cfg.Parser)
	}

	if cfg.Hooks != nil {
		t.Fatalf("expected no hooks, got %d", len(cfg.Hooks))
	}
}

func TestNewConfigNilLocationFallsBack(t *testing.T) {
	cfg, err := NewConfig(WithLocation(nil), nil)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Location != time.Local {
		t.Fatalf("Location = %v, want time.Local", cfg.Location)
	}
}

func TestWithLocationName(t *testing.T) {
	cfg, err := NewConfig(WithLocationName("UTC"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Location.String() != "UTC" {
		t.Fatalf("Location = %v", cfg.Location)
	}

	if _, err := NewConfig(WithLocationName("Not/AZone")); err == nil {
		t.Fatal("expected error for unknown zone")
	}

	cfg, err = NewConfig(WithLocationName("  "))
	if err != nil {
		t.Fatalf("blank zone: %v", err)
	}
	if cfg.Location != time.Local {
		t.Fatalf("blank zone should keep default, got %v", cfg.Location)
	}
}

func TestBuildLocalizerUsesTargetLocaleRules(t *testing.T) {
	l, err := New(
		WithLocation(time.UTC),
		WithFormattingRules(map[string]FormattingRules{
			"en-GB": {DatePattern: "{yyyy}-{MM}-{dd}", TimePattern: "{HH}h{mm}", Separator: " "},
		}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := l.LocalizeText("2023-06-15T14:30:00Z"); got != "2023-06-15 14h30" {
		t.Fatalf("LocalizeText = %q", got)
	}
	if l.Location() != time.UTC {
		t.Fatalf("Location = %v", l.Location())
	}
}

func TestBuildLocalizerNilConfig(t *testing.T) {
	var cfg *Config
	if _, err := cfg.BuildLocalizer(); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestWithFormattingRulesValidatesLocaleKeys(t *testing.T) {
	for _, key := range []string{"", "  ", "not a locale!"} {
		if _, err := NewConfig(WithFormattingRules(map[string]FormattingRules{key: {}})); err == nil {
			t.Fatalf("expected error for locale key %q", key)
		}
	}

	l, err := New(
		WithLocation(time.UTC),
		WithFormattingRules(map[string]FormattingRules{
			"en_GB": {DatePattern: "{d}.{M}.{yyyy}", TimePattern: "{H}:{mm}", Separator: " "},
		}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := l.LocalizeText("2023-06-05T04:30:00Z"); got != "5.6.2023 4:30" {
		t.Fatalf("LocalizeText = %q", got)
	}
}
