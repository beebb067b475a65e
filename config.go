package timestamps

import (
	"fmt"
	"strings"
	"time"
)

// Config captures localizer setup
type Config struct {
	// Location is the host zone timestamps are rendered in. Defaults to time.Local.
	Location *time.Location
	Parser   Parser
	Hooks    []LocalizeHook

	ruleOverrides map[string]FormattingRules
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	if cfg.Parser == nil {
		cfg.Parser = DateParser{}
	}

	cfg.Hooks = filterHooks(cfg.Hooks)

	return cfg, nil
}

// WithLocation sets the zone used for rendering and for zone-less input.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		c.Location = loc
		return nil
	}
}

// WithLocationName loads an IANA zone name. An empty name keeps the default.
func WithLocationName(name string) Option {
	return func(c *Config) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("timestamps: load location %q: %w", name, err)
		}
		c.Location = loc
		return nil
	}
}

func WithParser(parser Parser) Option {
	return func(c *Config) error {
		c.Parser = parser
		return nil
	}
}

func WithHooks(hooks ...LocalizeHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithFormattingRules overrides built-in rules by locale key.
func WithFormattingRules(rules map[string]FormattingRules) Option {
	return func(c *Config) error {
		if len(rules) == 0 {
			return nil
		}
		if c.ruleOverrides == nil {
			c.ruleOverrides = make(map[string]FormattingRules, len(rules))
		}
		for locale, r := range rules {
			key, err := validateLocaleKey(locale)
			if err != nil {
				return err
			}
			c.ruleOverrides[key] = r
		}
		return nil
	}
}

// RulesProvider returns the formatting rules provider for this config.
func (c *Config) RulesProvider() *FormattingRulesProvider {
	return NewFormattingRulesProvider(c.ruleOverrides)
}

// BuildLocalizer returns a Localizer bound to TargetLocale.
func (c *Config) BuildLocalizer() (*Localizer, error) {
	if c == nil {
		return nil, fmt.Errorf("timestamps: nil config")
	}

	return &Localizer{
		rules:  c.RulesProvider().Get(TargetLocale),
		loc:    c.Location,
		parser: c.Parser,
		hooks:  append([]LocalizeHook(nil), c.Hooks...),
	}, nil
}
