package payload

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/lucasb-eyer/go-colorful"

	"sshtint/internal/sshconfig"
)

// ProfileColor is iTerm2's color dict representation: sRGB components in
// the 0..1 range.
type ProfileColor struct {
	Red        float64 `json:"Red Component"`
	Green      float64 `json:"Green Component"`
	Blue       float64 `json:"Blue Component"`
	Alpha      float64 `json:"Alpha Component"`
	ColorSpace string  `json:"Color Space"`
}

// NewProfileColor converts a "#RRGGBB" token to an iTerm2 color dict.
func NewProfileColor(hex string) (ProfileColor, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ProfileColor{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return ProfileColor{
		Red:        c.R,
		Green:      c.G,
		Blue:       c.B,
		Alpha:      1.0,
		ColorSpace: "sRGB",
	}, nil
}

// Profile is one iTerm2 dynamic profile record.
type Profile struct {
	Name                 string       `json:"Name"`
	GUID                 string       `json:"Guid"`
	CustomCommand        string       `json:"Custom Command"`
	Command              string       `json:"Command"`
	BackgroundColor      ProfileColor `json:"Background Color"`
	BadgeText            string       `json:"Badge Text"`
	Tags                 []string     `json:"Tags"`
	BoundHosts           []string     `json:"Bound Hosts,omitempty"`
	UseTabColor          bool         `json:"Use Tab Color"`
	TabColor             ProfileColor `json:"Tab Color"`
	CustomDirectory      string       `json:"Custom Directory"`
	WorkingDirectory     string       `json:"Working Directory"`
	NewWindowsUseProfile bool         `json:"New Windows Use This Profile"`
	NewTabsUseProfile    bool         `json:"New Tabs Use This Profile"`
}

// ProfileGUID derives the stable profile identifier from a host alias.
func ProfileGUID(alias string) string {
	return "ssh-" + strings.ReplaceAll(strings.ToLower(alias), ".", "-")
}

// TerminalProfile builds the dynamic profile record for one host. It
// returns nil when the record carries no terminal color.
func TerminalProfile(rec *sshconfig.HostColorRecord, homeDir string) (*Profile, error) {
	if rec.TerminalColor == "" {
		return nil, nil
	}

	color, err := NewProfileColor(rec.TerminalColor)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Name:            "SSH: " + rec.Alias,
		GUID:            ProfileGUID(rec.Alias),
		CustomCommand:   "Yes",
		Command:         shellquote.Join("ssh", rec.Alias),
		BackgroundColor: color,
		BadgeText:       rec.SessionLabel(),
		Tags:            []string{"SSH"},
		UseTabColor:     true,
		TabColor:        color,
		// New windows start at home, new tabs and splits reuse the last
		// directory.
		CustomDirectory:      "Recycle",
		WorkingDirectory:     homeDir,
		NewWindowsUseProfile: false,
		NewTabsUseProfile:    true,
	}

	// Automatic profile switching binds the profile to the hostname.
	if rec.SwitchEnabled() {
		p.BoundHosts = []string{rec.Alias}
	}

	return p, nil
}
