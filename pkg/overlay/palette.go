package overlay

// ColorPair is a background/foreground combination for popup rendering.
type ColorPair struct {
	BG Color `json:"bg" yaml:"bg"`
	FG Color `json:"fg" yaml:"fg"`
}

// Palette maps popup roles and the default highlight to concrete
// colors. Themes produce palettes; the surface driver consumes them.
type Palette struct {
	Info    ColorPair `json:"info" yaml:"info"`
	Success ColorPair `json:"success" yaml:"success"`
	Warning ColorPair `json:"warning" yaml:"warning"`
	Error   ColorPair `json:"error" yaml:"error"`

	// Highlight is the color used when a caller does not pick one.
	Highlight Color `json:"highlight" yaml:"highlight"`

	// Badge colors the text of corner badges.
	BadgeText Color `json:"badge_text" yaml:"badge_text"`
}

// DefaultPalette returns the built-in color palette: translucent navy
// info, green success, orange warning with dark text, dark red error.
func DefaultPalette() Palette {
	return Palette{
		Info:      ColorPair{BG: Color{R: 0, G: 0, B: 128, A: 200}, FG: ColorWhite},
		Success:   ColorPair{BG: Color{R: 0, G: 128, B: 0, A: 200}, FG: ColorWhite},
		Warning:   ColorPair{BG: Color{R: 255, G: 165, B: 0, A: 200}, FG: ColorBlack},
		Error:     ColorPair{BG: Color{R: 128, G: 0, B: 0, A: 200}, FG: ColorWhite},
		Highlight: ColorRed,
		BadgeText: ColorWhite,
	}
}

// Popup returns the color pair for a non-custom popup kind. Unknown
// kinds fall back to the info pair.
func (p Palette) Popup(k PopupKind) ColorPair {
	switch k {
	case PopupSuccess:
		return p.Success
	case PopupWarning:
		return p.Warning
	case PopupError:
		return p.Error
	default:
		return p.Info
	}
}
