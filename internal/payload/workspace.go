package payload

import (
	"fmt"

	"sshtint/internal/sshconfig"
)

// WorkspaceFolder is one folder entry of a VS Code workspace file.
type WorkspaceFolder struct {
	URI string `json:"uri"`
}

// Workspace is the .code-workspace document generated per host.
type Workspace struct {
	Folders  []WorkspaceFolder `json:"folders"`
	Settings map[string]any    `json:"settings"`
}

// EditorWorkspace builds the workspace file content for one host. The
// marker is the remote-authority kind the workspace URI opens with. It
// returns nil when the record carries no editor color.
func EditorWorkspace(rec *sshconfig.HostColorRecord, marker string) *Workspace {
	if rec.EditorColor == "" {
		return nil
	}

	customizations := make(map[string]any, len(EditorKeys()))
	for key, value := range Editor(rec.EditorColor) {
		customizations[key] = value
	}

	return &Workspace{
		Folders: []WorkspaceFolder{
			{URI: fmt.Sprintf("vscode-remote://%s+%s/home", marker, rec.Alias)},
		},
		Settings: map[string]any{
			"peacock.color":                 rec.EditorColor,
			"workbench.colorCustomizations": customizations,
		},
	}
}
