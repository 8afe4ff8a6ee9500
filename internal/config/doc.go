// Package config provides tool settings and path defaults for sshtint.
//
// # Settings File
//
// Settings are loaded from ~/.config/sshtint/config.toml. The file is
// optional; every field has a default:
//
//	ssh_config = "/home/emma/.ssh/config"
//	profiles_dir = "/home/emma/Library/Application Support/iTerm2/DynamicProfiles"
//	workspaces_dir = "/home/emma/.ssh/workspaces"
//	authority_marker = "ssh-remote"
//
// Note this is the configuration of the tool itself. The SSH client config
// it points at is parsed by the sshconfig package.
package config
