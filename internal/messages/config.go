package messages

// Config messages for loading and validating the trim configuration.
const (
	// ConfigReadFileFmt formats config file read errors.
	ConfigReadFileFmt   = "read config file %s: %w"
	ConfigInvalidFmt    = "invalid config %s: %w"
	ConfigUnknownKeyFmt = "%s: unrecognized keys: %w"

	ConfigAppNameRequiredFmt          = "%s: app_name is required"
	ConfigAppNameInvalidFmt           = "%s: app_name %q must be a single path segment"
	ConfigFailureExitCodeRangeFmt     = "%s: failure_exit_code must be between 0 and 255"
	ConfigAllowFolderEmptyFmt         = "%s: allow.folders[%d] is empty"
	ConfigAllowFileEmptyFmt           = "%s: allow.files[%d] is empty"
	ConfigPlaceholderTokenRequiredFmt = "%s: placeholders[%d].token is required"
	ConfigPlaceholderTokenFormFmt     = "%s: placeholders[%d].token %q must have the form ${Name}"
	ConfigPlaceholderDuplicateFmt     = "%s: placeholders[%d].token %q duplicates placeholders[%d]"
	ConfigPlaceholderFileKeptFmt      = "%s: placeholders[%d].file %q is in allow.files; the manifest would lose a reference to a file that is kept"
	ConfigManifestFileRequiredFmt     = "%s: manifest.file is required"
	ConfigManifestFileNotKeptFmt      = "%s: manifest.file %q must be listed in allow.files"
	ConfigInstallerExeRequiredFmt     = "%s: installer.executable is required"
	ConfigInstallerExeNotKeptFmt      = "%s: installer.executable %q must be listed in allow.files"
	ConfigExtractorExclusiveFmt       = "%s: extractor.path and extractor.lookup cannot both be set"
)
