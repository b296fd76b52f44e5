package messages

// CLI messages for the root command, banner, and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "nvtrim"
	// RootShort is the short description for the root command.
	RootShort = "Strip bloat from an NVIDIA driver package before installing it"
	RootLong  = "Extracts an NVIDIA driver archive, deletes everything outside the allow-list, removes manifest references to the deleted files, and optionally launches the trimmed installer silently."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig   = "Path to a TOML file overriding the built-in allow-list, placeholders, and installer settings"
	FlagArchive  = "Driver archive to trim (skips the archive prompt)"
	FlagPassword = "Password for the driver archive, if it has one"
	FlagLaunch   = "Launch the trimmed installer without asking"
	FlagNoLaunch = "Leave the trimmed package on disk without asking"
	FlagPlain    = "Use line-based prompts even when attached to a terminal"
	FlagVerbose  = "Enable debug logging and print the manifest diff"

	FlagLaunchConflict = "--launch and --no-launch cannot be used together"

	BannerRule  = "========================================="
	BannerTitle = "     Nvidia Driver Update Minimiser      "

	// PromptArchiveMessage introduces the archive path prompt.
	PromptArchiveMessage = "\nEnter the location of the Nvidia driver that has been downloaded.."
	PromptArchiveLabel   = "File Path: "
	PromptArchiveError   = "Error: Unable to find the driver at the path specified!"
	PromptLaunchMessage  = "\nDo you want to launch the driver installation?"
	PromptLaunchLabel    = "Start Upgrade (Y/N): "

	// PromptBoolErrorDefault is shown after an unrecognised yes/no response.
	PromptBoolErrorDefault = "Error: Invalid response received - please enter a valid yes/no response!"
	PromptPathErrorDefault = "Error: Unable to find the path provided!"
	PromptPathEmpty        = "path is empty"
	PromptBoolInvalidFmt   = "invalid response %q"
	PromptNoResponse       = "no response received before end of input"
	PromptRequiresTerminal = "interactive prompts require a terminal; re-run with --plain"
	PromptAborted          = "prompt aborted"

	FinishedMessage    = "\nApplication finished.."
	RunFailedFmt       = "Error: %v\n"
	ManifestDiffHeader = "\nManifest changes:"
	LoggerPrefix       = "nvtrim"
)
