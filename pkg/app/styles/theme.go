package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// TypeColors is the chip color of every type tag.
var TypeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#A8A77A"),
	"fire":     lipgloss.Color("#EE8130"),
	"water":    lipgloss.Color("#6390F0"),
	"electric": lipgloss.Color("#F7D02C"),
	"grass":    lipgloss.Color("#7AC74C"),
	"ice":      lipgloss.Color("#96D9D6"),
	"fighting": lipgloss.Color("#C22E28"),
	"poison":   lipgloss.Color("#A33EA1"),
	"ground":   lipgloss.Color("#E2BF65"),
	"flying":   lipgloss.Color("#A98FF3"),
	"psychic":  lipgloss.Color("#F95587"),
	"bug":      lipgloss.Color("#A6B91A"),
	"rock":     lipgloss.Color("#B6A136"),
	"ghost":    lipgloss.Color("#735797"),
	"dragon":   lipgloss.Color("#6F35FC"),
	"dark":     lipgloss.Color("#705746"),
	"steel":    lipgloss.Color("#B7B7CE"),
	"fairy":    lipgloss.Color("#D685AD"),
}

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Selected row in the record list
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(1, 2).
			MarginBottom(1)

	// Status styles
	StatusLoading = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusReady = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	FavoriteStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Progress bar styles
	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// Filter toggles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#37474F")).
			Padding(0, 1).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// TypeStyle returns the chip style of a type tag. Unknown tags are muted.
func TypeStyle(tag string) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	c, ok := TypeColors[tag]
	if !ok {
		return base.Foreground(Muted)
	}
	return base.Foreground(lipgloss.Color("#1B1B1B")).Background(c)
}

// StatusStyle returns the style of a load state name.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "loading":
		return StatusLoading
	case "ready":
		return StatusReady
	case "failed":
		return StatusError
	default:
		return MutedStyle
	}
}
