package timestamps

// FuncMap exposes the localizer as go-template helpers
func (l *Localizer) FuncMap() map[string]any {
	return map[string]any{
		"localize_timestamp": l.LocalizeText,
	}
}
