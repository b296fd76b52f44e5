package messages

// System messages for the runner, working directory, extractor, remover, patcher, and launcher.
const (
	// RunnerPathRequired indicates a command was built without an executable.
	RunnerPathRequired = "command path is required"
	RunnerStartFmt     = "start %s: %w"
	RunnerExitFmt      = "%s exited with code %d"

	WorkdirCreateFmt   = "create working directory %s: %w"
	WorkdirRemoveFmt   = "remove working directory %s: %w"
	WorkdirRootEmpty   = "working directory root is required"
	WorkdirIDFailed    = "generate working directory id: %w"
	WorkdirNotOwnedFmt = "refusing to remove %s: not under %s"

	ExtractArchiveNotFound     = "unable to locate the zip file"
	ExtractDestinationNotFound = "unable to locate the destination folder"
	ExtractToolNotFound        = "unable to locate the 7-Zip installation"
	ExtractToolMissingFmt      = "7-Zip executable %s does not exist"
	ExtractToolRegistryFmt     = "read 7-Zip registry key: %w"
	ExtractToolLookupFmt       = "look up %s on PATH: %w"
	ExtractToolUnsupported     = "7-Zip registry lookup is only available on Windows; set extractor.path or extractor.lookup"
	ExtractSucceeded           = "Unzip completed successfully"
	ExtractFailedFmt           = "unzip %s: %w"

	BloatDeletingFolderFmt = " > Deleting folder '%s'\n"
	BloatDeletingFileFmt   = " > Deleting file '%s'\n"
	BloatReadDirFmt        = "read working directory %s: %w"
	BloatItemFailedFmt     = "delete %s: %w"
	BloatItemFailedLog     = "Something went wrong deleting the driver bloat"

	ManifestReadFmt        = "read manifest %s: %w"
	ManifestWriteFmt       = "write manifest %s: %w"
	ManifestNoRoot         = "manifest has no root element"
	ManifestRemovingRefFmt = " > Removing reference to '%s'\n"

	LaunchInstallerNotFound    = "installer not found"
	LaunchInstallerNotFoundFmt = "installer %s does not exist"
	LaunchSucceeded            = "Update completed successfully"
	LaunchFailedFmt            = "launch %s: %w"
	LaunchElevationRequired    = "the installer needs administrator rights; run nvtrim from an elevated prompt"
)
