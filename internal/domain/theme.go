package domain

// Palette maps semantic UI roles to hex color values. Exactly two palettes
// exist; clients never compose their own.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
	Background string `json:"background"`
	Card       string `json:"card"`
	Text       string `json:"text"`
	Subtext    string `json:"subtext"`
	Border     string `json:"border"`
}

var lightPalette = Palette{
	Primary:    "#2DD4BF",
	Secondary:  "#1E40AF",
	Accent:     "#FB7185",
	Success:    "#10B981",
	Warning:    "#F59E0B",
	Error:      "#EF4444",
	Background: "#FFFFFF",
	Card:       "#F3F4F6",
	Text:       "#1F2937",
	Subtext:    "#6B7280",
	Border:     "#E5E7EB",
}

var darkPalette = Palette{
	Primary:    "#14B8A6",
	Secondary:  "#3B82F6",
	Accent:     "#F43F5E",
	Success:    "#059669",
	Warning:    "#D97706",
	Error:      "#DC2626",
	Background: "#1F2937",
	Card:       "#374151",
	Text:       "#F9FAFB",
	Subtext:    "#D1D5DB",
	Border:     "#4B5563",
}

// PaletteFor selects the fixed palette for the dark-mode flag.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Theme is the session-visible theme state.
type Theme struct {
	Dark    bool    `json:"dark"`
	Palette Palette `json:"palette"`
}
