package payload

const (
	// inactiveAlphaSuffix is appended to the base color for the inactive
	// title bar. Fixed, not configurable.
	inactiveAlphaSuffix = "99"

	// contrastForeground is the fixed high-contrast foreground used against
	// every host color.
	contrastForeground = "#ffffff"
)

// Editor color-customization keys managed by sshtint. Anything outside this
// set is left untouched when applying or clearing.
const (
	KeyTitleBarActiveBackground   = "titleBar.activeBackground"
	KeyTitleBarActiveForeground   = "titleBar.activeForeground"
	KeyTitleBarInactiveBackground = "titleBar.inactiveBackground"
	KeyTitleBarInactiveForeground = "titleBar.inactiveForeground"
	KeyActivityBarBackground      = "activityBar.background"
	KeyActivityBarForeground      = "activityBar.foreground"
	KeyStatusBarBackground        = "statusBar.background"
	KeyStatusBarForeground        = "statusBar.foreground"
)

// EditorKeys lists every customization key sshtint manages, in a stable
// order. Clearing removes exactly these keys.
func EditorKeys() []string {
	return []string{
		KeyTitleBarActiveBackground,
		KeyTitleBarActiveForeground,
		KeyTitleBarInactiveBackground,
		KeyTitleBarInactiveForeground,
		KeyActivityBarBackground,
		KeyActivityBarForeground,
		KeyStatusBarBackground,
		KeyStatusBarForeground,
	}
}

// Editor derives the full editor color-customization set from one base
// color. The result is a pure function of the color: applying it twice
// yields the same payload.
func Editor(color string) map[string]string {
	return map[string]string{
		KeyTitleBarActiveBackground:   color,
		KeyTitleBarActiveForeground:   contrastForeground,
		KeyTitleBarInactiveBackground: color + inactiveAlphaSuffix,
		KeyTitleBarInactiveForeground: contrastForeground,
		KeyActivityBarBackground:      color,
		KeyActivityBarForeground:      contrastForeground,
		KeyStatusBarBackground:        color,
		KeyStatusBarForeground:        contrastForeground,
	}
}
