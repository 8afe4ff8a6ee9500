package sshconfig

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"sshtint/internal/logging"
)

// Directive keywords recognized in SSH config comments. Keyword matching is
// case-insensitive; hex digits are captured as written.
const (
	DirectiveTerminalColor = "iterm-color"
	DirectiveEditorColor   = "vscode-color"
	DirectiveBadge         = "iterm-badge"
	DirectiveSwitch        = "iterm-switch"
)

var (
	// Color directives: "# iterm-color: #1a1a2e". Anchored at end of line
	// so a wrong-length hex token makes the whole line a non-match.
	colorRe = regexp.MustCompile(`(?i)^#\s*(iterm-color|vscode-color)\s*:\s*(#[0-9a-fA-F]{6})\s*$`)

	// Extension directives for the terminal profile record.
	badgeRe  = regexp.MustCompile(`(?i)^#\s*iterm-badge\s*:\s*(\S(?:.*\S)?)\s*$`)
	switchRe = regexp.MustCompile(`(?i)^#\s*iterm-switch\s*:\s*(true|false)\s*$`)

	// Host declarations: the keyword is case-insensitive and only the first
	// whitespace-delimited alias token is taken.
	hostRe = regexp.MustCompile(`(?i)^host\s+(\S+)`)
)

// HostColorRecord binds one host alias to the color annotations that
// immediately preceded its Host line.
type HostColorRecord struct {
	Alias         string
	TerminalColor string // "#RRGGBB", empty if no iterm-color directive
	EditorColor   string // "#RRGGBB", empty if no vscode-color directive
	Badge         string // session label, empty means "use the alias"
	AutoSwitch    *bool  // automatic profile switching, nil means enabled
}

// SessionLabel returns the badge text for the terminal profile, falling back
// to the alias.
func (r *HostColorRecord) SessionLabel() string {
	if r.Badge != "" {
		return r.Badge
	}
	return r.Alias
}

// SwitchEnabled reports whether automatic profile switching is on for this
// host. It defaults to true when the directive is absent.
func (r *HostColorRecord) SwitchEnabled() bool {
	if r.AutoSwitch == nil {
		return true
	}
	return *r.AutoSwitch
}

// Equal reports whether two records carry the same annotations.
func (r *HostColorRecord) Equal(other *HostColorRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Alias != other.Alias ||
		r.TerminalColor != other.TerminalColor ||
		r.EditorColor != other.EditorColor ||
		r.Badge != other.Badge {
		return false
	}
	return r.SwitchEnabled() == other.SwitchEnabled()
}

// HostColorMap maps host aliases to their color records. It is rebuilt fresh
// on every parse and never merged with a previous version.
type HostColorMap map[string]*HostColorRecord

// Equal reports whether two maps hold the same alias→record pairs. Used to
// detect no-op reloads.
func (m HostColorMap) Equal(other HostColorMap) bool {
	if len(m) != len(other) {
		return false
	}
	for alias, rec := range m {
		o, ok := other[alias]
		if !ok || !rec.Equal(o) {
			return false
		}
	}
	return true
}

// Aliases returns the configured aliases in unspecified order.
func (m HostColorMap) Aliases() []string {
	aliases := make([]string, 0, len(m))
	for alias := range m {
		aliases = append(aliases, alias)
	}
	return aliases
}

// scanState tracks whether any directive is waiting for its Host line.
type scanState int

const (
	stateIdle scanState = iota
	statePending
)

// pendingSlots holds at most one pending value per directive kind. A second
// directive of the same kind before a Host line replaces the earlier one;
// a Host line consumes and clears all slots at once.
type pendingSlots struct {
	terminalColor string
	editorColor   string
	badge         string
	autoSwitch    *bool
}

func (p *pendingSlots) hasColor() bool {
	return p.terminalColor != "" || p.editorColor != ""
}

// scanner is the explicit state machine behind Parse.
type scanner struct {
	state scanState
	slots pendingSlots
}

// directive records a pending directive value, discarding any earlier value
// of the same kind.
func (s *scanner) directive(kind, value string) {
	switch kind {
	case DirectiveTerminalColor:
		if s.slots.terminalColor != "" {
			logging.Debug("discarding pending terminal color", "replaced", s.slots.terminalColor, "by", value)
		}
		s.slots.terminalColor = value
	case DirectiveEditorColor:
		if s.slots.editorColor != "" {
			logging.Debug("discarding pending editor color", "replaced", s.slots.editorColor, "by", value)
		}
		s.slots.editorColor = value
	case DirectiveBadge:
		s.slots.badge = value
	case DirectiveSwitch:
		enabled := strings.EqualFold(value, "true")
		s.slots.autoSwitch = &enabled
	}
	s.state = statePending
}

// host consumes the pending slots for a Host declaration. It returns the
// record to emit, or nil when there is nothing pending, the alias is a
// wildcard pattern, or no color directive preceded the Host line. The slots
// are cleared in every case: each directive applies only to the single,
// immediately following Host line.
func (s *scanner) host(alias string) *HostColorRecord {
	defer func() {
		s.slots = pendingSlots{}
		s.state = stateIdle
	}()

	if s.state == stateIdle {
		return nil
	}
	if strings.ContainsAny(alias, "*?") {
		logging.Debug("skipping wildcard host pattern", "pattern", alias)
		return nil
	}
	if !s.slots.hasColor() {
		return nil
	}
	return &HostColorRecord{
		Alias:         alias,
		TerminalColor: s.slots.terminalColor,
		EditorColor:   s.slots.editorColor,
		Badge:         s.slots.badge,
		AutoSwitch:    s.slots.autoSwitch,
	}
}

// Parse reads SSH config text and extracts hosts with color annotations.
// Lines matching neither a directive comment nor a Host declaration are
// ignored, which covers all regular SSH directives (HostName, User, ...).
func Parse(r io.Reader) (HostColorMap, error) {
	hosts := make(HostColorMap)
	sc := &scanner{}

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())

		if m := colorRe.FindStringSubmatch(line); m != nil {
			sc.directive(strings.ToLower(m[1]), m[2])
			continue
		}
		if m := badgeRe.FindStringSubmatch(line); m != nil {
			sc.directive(DirectiveBadge, m[1])
			continue
		}
		if m := switchRe.FindStringSubmatch(line); m != nil {
			sc.directive(DirectiveSwitch, m[1])
			continue
		}
		if m := hostRe.FindStringSubmatch(line); m != nil {
			if rec := sc.host(m[1]); rec != nil {
				hosts[rec.Alias] = rec
			}
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	return hosts, nil
}

// ParseFile parses the SSH config at path. A missing file is a normal state
// (no SSH config yet created) and yields an empty map.
func ParseFile(path string) (HostColorMap, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("ssh config absent", "path", path)
			return make(HostColorMap), nil
		}
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
