package animation

// Frames is an ordered, cyclic set of animation glyphs.
type Frames []string

// Canonical frame sets.
var (
	Dots    = Frames{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	Lines   = Frames{"|", "/", "-", "\\"}
	Blocks  = Frames{"▌", "▀", "▐", "▄"}
	Circles = Frames{"◐", "◓", "◑", "◒"}
)

// At returns the frame for iteration i, wrapping around the set.
// Negative iterations map to the first frame; an empty set yields "".
func (f Frames) At(i int) string {
	if len(f) == 0 {
		return ""
	}
	if i < 0 {
		i = 0
	}
	return f[i%len(f)]
}

// Len returns the number of frames in the set.
func (f Frames) Len() int {
	return len(f)
}

// Style pairs a frame set with the names demo output uses for it.
type Style struct {
	Name   string // lowercase, shown inside animation lines
	Title  string // capitalized, shown in headers and completions
	Frames Frames
}

// Styles returns the named styles in their fixed display order. The
// order matters to output, which is why this is a slice and not a map.
func Styles() []Style {
	return []Style{
		{Name: "dots", Title: "Dots", Frames: Dots},
		{Name: "spinner", Title: "Spinner", Frames: Lines},
		{Name: "bars", Title: "Bars", Frames: Blocks},
		{Name: "circles", Title: "Circles", Frames: Circles},
	}
}
