package payload

import (
	"math"
	"testing"

	"sshtint/internal/sshconfig"
)

func TestNewProfileColor(t *testing.T) {
	c, err := NewProfileColor("#1a1a2e")
	if err != nil {
		t.Fatalf("NewProfileColor() error = %v", err)
	}

	approx := func(got, want float64) bool {
		return math.Abs(got-want) < 1e-9
	}
	if !approx(c.Red, 0x1a/255.0) {
		t.Errorf("Red = %v, want %v", c.Red, 0x1a/255.0)
	}
	if !approx(c.Green, 0x1a/255.0) {
		t.Errorf("Green = %v, want %v", c.Green, 0x1a/255.0)
	}
	if !approx(c.Blue, 0x2e/255.0) {
		t.Errorf("Blue = %v, want %v", c.Blue, 0x2e/255.0)
	}
	if c.Alpha != 1.0 {
		t.Errorf("Alpha = %v, want 1.0", c.Alpha)
	}
	if c.ColorSpace != "sRGB" {
		t.Errorf("ColorSpace = %q, want sRGB", c.ColorSpace)
	}
}

func TestNewProfileColor_Invalid(t *testing.T) {
	if _, err := NewProfileColor("#xyz"); err == nil {
		t.Error("NewProfileColor() should reject invalid hex")
	}
}

func TestProfileGUID(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"dev-server", "ssh-dev-server"},
		{"db.prod.example", "ssh-db-prod-example"},
		{"MixedCase", "ssh-mixedcase"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			if got := ProfileGUID(tt.alias); got != tt.want {
				t.Errorf("ProfileGUID(%q) = %q, want %q", tt.alias, got, tt.want)
			}
		})
	}
}

func TestTerminalProfile(t *testing.T) {
	rec := &sshconfig.HostColorRecord{
		Alias:         "dev-server",
		TerminalColor: "#1a1a2e",
	}

	p, err := TerminalProfile(rec, "/home/emma")
	if err != nil {
		t.Fatalf("TerminalProfile() error = %v", err)
	}
	if p == nil {
		t.Fatal("TerminalProfile() = nil, want profile")
	}

	if p.Name != "SSH: dev-server" {
		t.Errorf("Name = %q, want %q", p.Name, "SSH: dev-server")
	}
	if p.GUID != "ssh-dev-server" {
		t.Errorf("GUID = %q, want ssh-dev-server", p.GUID)
	}
	if p.Command != "ssh dev-server" {
		t.Errorf("Command = %q, want %q", p.Command, "ssh dev-server")
	}
	if p.BadgeText != "dev-server" {
		t.Errorf("BadgeText = %q, want alias fallback", p.BadgeText)
	}
	if len(p.BoundHosts) != 1 || p.BoundHosts[0] != "dev-server" {
		t.Errorf("BoundHosts = %v, want [dev-server]", p.BoundHosts)
	}
	if !p.UseTabColor || p.TabColor != p.BackgroundColor {
		t.Error("tab color should mirror the background color")
	}
	if p.WorkingDirectory != "/home/emma" {
		t.Errorf("WorkingDirectory = %q, want /home/emma", p.WorkingDirectory)
	}
	if !p.NewTabsUseProfile || p.NewWindowsUseProfile {
		t.Error("new tabs should use the profile, new windows should not")
	}
}

func TestTerminalProfile_CommandQuoting(t *testing.T) {
	rec := &sshconfig.HostColorRecord{
		Alias:         "host with space",
		TerminalColor: "#111111",
	}

	p, err := TerminalProfile(rec, "/home/emma")
	if err != nil {
		t.Fatalf("TerminalProfile() error = %v", err)
	}
	if p.Command != "ssh 'host with space'" {
		t.Errorf("Command = %q, want the alias quoted", p.Command)
	}
}

func TestTerminalProfile_Extensions(t *testing.T) {
	off := false
	rec := &sshconfig.HostColorRecord{
		Alias:         "db.prod",
		TerminalColor: "#0f3460",
		Badge:         "prod db",
		AutoSwitch:    &off,
	}

	p, err := TerminalProfile(rec, "/home/emma")
	if err != nil {
		t.Fatalf("TerminalProfile() error = %v", err)
	}
	if p.BadgeText != "prod db" {
		t.Errorf("BadgeText = %q, want %q", p.BadgeText, "prod db")
	}
	if p.BoundHosts != nil {
		t.Errorf("BoundHosts = %v, want nil when switching is disabled", p.BoundHosts)
	}
}

func TestTerminalProfile_NoTerminalColor(t *testing.T) {
	rec := &sshconfig.HostColorRecord{Alias: "editor-only", EditorColor: "#1a1a2e"}

	p, err := TerminalProfile(rec, "/home/emma")
	if err != nil {
		t.Fatalf("TerminalProfile() error = %v", err)
	}
	if p != nil {
		t.Errorf("TerminalProfile() = %+v, want nil", p)
	}
}

func TestEditorWorkspace(t *testing.T) {
	rec := &sshconfig.HostColorRecord{Alias: "dev-server", EditorColor: "#1a1a2e"}

	ws := EditorWorkspace(rec, "ssh-remote")
	if ws == nil {
		t.Fatal("EditorWorkspace() = nil, want workspace")
	}
	if len(ws.Folders) != 1 || ws.Folders[0].URI != "vscode-remote://ssh-remote+dev-server/home" {
		t.Errorf("Folders = %+v, want the remote URI", ws.Folders)
	}
	if ws.Settings["peacock.color"] != "#1a1a2e" {
		t.Errorf("peacock.color = %v, want #1a1a2e", ws.Settings["peacock.color"])
	}
	custom, ok := ws.Settings["workbench.colorCustomizations"].(map[string]any)
	if !ok {
		t.Fatal("workbench.colorCustomizations missing")
	}
	if custom["titleBar.activeBackground"] != "#1a1a2e" {
		t.Errorf("titleBar.activeBackground = %v, want #1a1a2e", custom["titleBar.activeBackground"])
	}
}

func TestEditorWorkspace_NoEditorColor(t *testing.T) {
	rec := &sshconfig.HostColorRecord{Alias: "term-only", TerminalColor: "#1a1a2e"}

	if ws := EditorWorkspace(rec, "ssh-remote"); ws != nil {
		t.Errorf("EditorWorkspace() = %+v, want nil", ws)
	}
}
