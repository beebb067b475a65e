package timestamps

// FormattingRules contains the locale-specific date and time patterns.
//
// Patterns use the tokens {dd} {d} {MM} {M} {yyyy} for the date and
// {HH} {H} {hh} {h} {mm} {ss} {a} for the time. Doubled tokens are zero padded.
type FormattingRules struct {
	Locale      string `json:"locale" yaml:"locale"`
	DatePattern string `json:"date_pattern" yaml:"date_pattern"`
	TimePattern string `json:"time_pattern" yaml:"time_pattern"`
	// Separator joins the date and time parts
	Separator string `json:"separator" yaml:"separator"`
	Use24Hour bool   `json:"use_24_hour" yaml:"use_24_hour"`
	AM        string `json:"am" yaml:"am"`
	PM        string `json:"pm" yaml:"pm"`
}
