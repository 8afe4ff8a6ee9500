package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/tidwall/jsonc"

	"sshtint/internal/logging"
	"sshtint/internal/payload"
	"sshtint/internal/sshconfig"
)

// EditorSink generates per-host .code-workspace files carrying the editor
// color customizations.
type EditorSink struct {
	Dir    string // output directory for workspace files
	Marker string // remote-authority kind for the workspace URI
}

// WriteWorkspaces writes one workspace file per host with an editor color.
// Files for hosts no longer configured are left in place; the workspace dir
// is user-visible and may hold hand-made files too. Returns the number of
// files written.
func (s *EditorSink) WriteWorkspaces(hosts sshconfig.HostColorMap) (int, error) {
	aliases := hosts.Aliases()
	sort.Strings(aliases)

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return 0, fmt.Errorf("cannot create workspaces directory: %w", err)
	}

	count := 0
	for _, alias := range aliases {
		ws := payload.EditorWorkspace(hosts[alias], s.Marker)
		if ws == nil {
			continue
		}

		// Aliases come from a user-editable file; keep the join confined to
		// the workspaces directory.
		path, err := securejoin.SecureJoin(s.Dir, alias+".code-workspace")
		if err != nil {
			logging.Warn("skipping host with unusable alias", "alias", alias, "error", err)
			continue
		}

		data, err := json.MarshalIndent(ws, "", "  ")
		if err != nil {
			return count, fmt.Errorf("cannot encode workspace for %s: %w", alias, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return count, fmt.Errorf("cannot write workspace for %s: %w", alias, err)
		}
		count++
	}

	logging.Debug("wrote editor workspaces", "dir", s.Dir, "count", count)
	return count, nil
}

// SettingsPatcher applies and clears the editor color payload in a live
// workspace settings file (.vscode/settings.json). Only the keys sshtint
// manages are touched; user settings survive untouched.
type SettingsPatcher struct {
	Path string
}

// NewSettingsPatcher returns a patcher for the workspace rooted at dir.
func NewSettingsPatcher(workspaceDir string) *SettingsPatcher {
	return &SettingsPatcher{Path: filepath.Join(workspaceDir, ".vscode", "settings.json")}
}

// Apply writes the color payload into workbench.colorCustomizations,
// overwriting the managed keys. Applying the same color twice is a no-op
// for the file content.
func (p *SettingsPatcher) Apply(color string) error {
	settings, err := p.load()
	if err != nil {
		return err
	}

	custom, _ := settings["workbench.colorCustomizations"].(map[string]any)
	if custom == nil {
		custom = make(map[string]any)
	}
	for key, value := range payload.Editor(color) {
		custom[key] = value
	}
	settings["workbench.colorCustomizations"] = custom

	return p.store(settings)
}

// Clear removes every managed key, returning the customization object to an
// absent state when nothing else is left in it. Clearing an already-clear
// file is a no-op.
func (p *SettingsPatcher) Clear() error {
	settings, err := p.load()
	if err != nil {
		return err
	}

	custom, _ := settings["workbench.colorCustomizations"].(map[string]any)
	if custom == nil {
		return nil
	}
	for _, key := range payload.EditorKeys() {
		delete(custom, key)
	}
	if len(custom) == 0 {
		delete(settings, "workbench.colorCustomizations")
	} else {
		settings["workbench.colorCustomizations"] = custom
	}

	return p.store(settings)
}

// load reads the settings file, tolerating the comments and trailing commas
// VS Code allows. A missing file is an empty settings object.
func (p *SettingsPatcher) load() (map[string]any, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("cannot read settings %s: %w", p.Path, err)
	}

	settings := make(map[string]any)
	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return nil, fmt.Errorf("cannot parse settings %s: %w", p.Path, err)
	}
	return settings, nil
}

func (p *SettingsPatcher) store(settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0755); err != nil {
		return fmt.Errorf("cannot create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	return os.WriteFile(p.Path, data, 0644)
}
