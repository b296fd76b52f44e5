// Package config holds the trim settings: the allow-list, the manifest
// placeholder tokens, file names, installer flags, and exit-code policy.
package config

import "slices"

// Defaults for the NVIDIA driver package layout.
const (
	DefaultAppName             = "NvidiaUpdateMinimiser"
	DefaultFailureExitCode     = 1
	DefaultManifestFile        = "setup.cfg"
	DefaultInstallerExecutable = "setup.exe"
)

// Config is the full set of trim settings.
type Config struct {
	AppName         string          `toml:"app_name"`
	FailureExitCode int             `toml:"failure_exit_code"`
	Allow           AllowList       `toml:"allow"`
	Placeholders    []Placeholder   `toml:"placeholders"`
	Manifest        ManifestConfig  `toml:"manifest"`
	Installer       InstallerConfig `toml:"installer"`
	Extractor       ExtractorConfig `toml:"extractor"`
}

// AllowList names the top-level folders and files kept after extraction.
type AllowList struct {
	Folders []string `toml:"folders"`
	Files   []string `toml:"files"`
}

// KeepsFolder reports whether a top-level directory with this exact name is kept.
func (a AllowList) KeepsFolder(name string) bool {
	return slices.Contains(a.Folders, name)
}

// KeepsFile reports whether a top-level file with this exact name is kept.
func (a AllowList) KeepsFile(name string) bool {
	return slices.Contains(a.Files, name)
}

// Placeholder is a manifest token that points at a file the allow-list removes.
type Placeholder struct {
	Token string `toml:"token"`
	Label string `toml:"label"`
	File  string `toml:"file"`
}

// DisplayName returns the label, or the token without its ${} wrapper.
func (p Placeholder) DisplayName() string {
	if p.Label != "" {
		return p.Label
	}
	if name, ok := tokenName(p.Token); ok {
		return name
	}
	return p.Token
}

// Forms returns the spellings of the token searched for in a manifest:
// the token itself and, for ${Name} tokens, the doubled ${{Name}} form that
// NVIDIA's setup.cfg uses.
func (p Placeholder) Forms() []string {
	if p.Token == "" {
		return nil
	}
	forms := []string{p.Token}
	if name, ok := tokenName(p.Token); ok {
		forms = append(forms, "${{"+name+"}}")
	}
	return forms
}

// ManifestConfig locates the installer manifest inside the working directory.
type ManifestConfig struct {
	File string `toml:"file"`
}

// InstallerConfig describes the trimmed installer invocation.
type InstallerConfig struct {
	Executable string   `toml:"executable"`
	Flags      []string `toml:"flags"`
}

// ExtractorConfig selects how the 7-Zip executable is found.
// With both fields empty the Windows registry is used.
type ExtractorConfig struct {
	Path   string `toml:"path"`
	Lookup string `toml:"lookup"`
}

// Default returns the built-in settings for NVIDIA driver packages.
func Default() *Config {
	return &Config{
		AppName:         DefaultAppName,
		FailureExitCode: DefaultFailureExitCode,
		Allow: AllowList{
			Folders: []string{"Display.Driver", "NVI2", "PhysX"},
			Files:   []string{"EULA.txt", "ListDevices.txt", DefaultManifestFile, DefaultInstallerExecutable},
		},
		Placeholders: []Placeholder{
			{Token: "${EulaHtmlFile}", Label: "EulaHtmlFile", File: "EULA.html"},
			{Token: "${FunctionalConsentFile}", Label: "FunctionalConsentFile", File: "FunctionalConsent.html"},
			{Token: "${PrivacyPolicyFile}", Label: "PrivacyPolicyFile", File: "PrivacyPolicy.html"},
		},
		Manifest: ManifestConfig{File: DefaultManifestFile},
		Installer: InstallerConfig{
			Executable: DefaultInstallerExecutable,
			Flags:      []string{"-nosplash", "-noeula", "-passive", "-noreboot", "-nofinish"},
		},
	}
}
