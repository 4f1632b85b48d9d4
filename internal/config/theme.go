package config

// Theme holds the color palette as hex strings usable by lipgloss.
type Theme struct {
	Accent    string `yaml:"accent"`
	Muted     string `yaml:"muted"`
	Success   string `yaml:"success"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	Selection string `yaml:"selection"`
}

// DefaultTheme returns the default color scheme (purple accent).
func DefaultTheme() Theme {
	return Theme{
		Accent:    "#7D56F4",
		Muted:     "#6C6C6C",
		Success:   "#22C55E",
		ErrorFg:   "#FECACA",
		ErrorBg:   "#7F1D1D",
		InfoFg:    "#BFDBFE",
		InfoBg:    "#1E3A8A",
		Selection: "#3B3B5B",
	}
}

func (t *Theme) applyDefaults() {
	def := DefaultTheme()
	if t.Accent == "" {
		t.Accent = def.Accent
	}
	if t.Muted == "" {
		t.Muted = def.Muted
	}
	if t.Success == "" {
		t.Success = def.Success
	}
	if t.ErrorFg == "" {
		t.ErrorFg = def.ErrorFg
	}
	if t.ErrorBg == "" {
		t.ErrorBg = def.ErrorBg
	}
	if t.InfoFg == "" {
		t.InfoFg = def.InfoFg
	}
	if t.InfoBg == "" {
		t.InfoBg = def.InfoBg
	}
	if t.Selection == "" {
		t.Selection = def.Selection
	}
}
