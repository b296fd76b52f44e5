package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/nvtrim/internal/messages"
)

var tokenPattern = regexp.MustCompile(`^\$\{([A-Za-z0-9_.-]+)\}$`)

func tokenName(token string) (string, bool) {
	match := tokenPattern.FindStringSubmatch(token)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// Validate ensures the config is complete and that the allow-list and the
// placeholder set agree on which files are removed.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.AppName) == "" {
		return fmt.Errorf(messages.ConfigAppNameRequiredFmt, source)
	}
	if strings.ContainsAny(c.AppName, `/\`) || c.AppName == "." || c.AppName == ".." {
		return fmt.Errorf(messages.ConfigAppNameInvalidFmt, source, c.AppName)
	}
	if c.FailureExitCode < 0 || c.FailureExitCode > 255 {
		return fmt.Errorf(messages.ConfigFailureExitCodeRangeFmt, source)
	}
	for i, name := range c.Allow.Folders {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf(messages.ConfigAllowFolderEmptyFmt, source, i)
		}
	}
	for i, name := range c.Allow.Files {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf(messages.ConfigAllowFileEmptyFmt, source, i)
		}
	}

	seen := make(map[string]int, len(c.Placeholders))
	for i, p := range c.Placeholders {
		if p.Token == "" {
			return fmt.Errorf(messages.ConfigPlaceholderTokenRequiredFmt, source, i)
		}
		if _, ok := tokenName(p.Token); !ok {
			return fmt.Errorf(messages.ConfigPlaceholderTokenFormFmt, source, i, p.Token)
		}
		if prev, ok := seen[p.Token]; ok {
			return fmt.Errorf(messages.ConfigPlaceholderDuplicateFmt, source, i, p.Token, prev)
		}
		seen[p.Token] = i
		if p.File != "" && c.Allow.KeepsFile(p.File) {
			return fmt.Errorf(messages.ConfigPlaceholderFileKeptFmt, source, i, p.File)
		}
	}

	if c.Manifest.File == "" {
		return fmt.Errorf(messages.ConfigManifestFileRequiredFmt, source)
	}
	if !c.Allow.KeepsFile(c.Manifest.File) {
		return fmt.Errorf(messages.ConfigManifestFileNotKeptFmt, source, c.Manifest.File)
	}
	if c.Installer.Executable == "" {
		return fmt.Errorf(messages.ConfigInstallerExeRequiredFmt, source)
	}
	if !c.Allow.KeepsFile(c.Installer.Executable) {
		return fmt.Errorf(messages.ConfigInstallerExeNotKeptFmt, source, c.Installer.Executable)
	}
	if c.Extractor.Path != "" && c.Extractor.Lookup != "" {
		return fmt.Errorf(messages.ConfigExtractorExclusiveFmt, source)
	}
	return nil
}
