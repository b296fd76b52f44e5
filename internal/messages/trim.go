package messages

// Orchestrator messages printed while a trim run progresses.
const (
	// TrimStepWorkdir announces working directory creation.
	TrimStepWorkdir  = "\nCreating working folder to use during installation process.."
	TrimStepExtract  = "\nUnzipping driver.."
	TrimStepBloat    = "\nRemoving driver bloat.."
	TrimStepManifest = "\nAdjusting driver configuration file.."
	TrimStepLaunch   = "\nLaunching the Nvidia driver installation.."
	TrimStepCleanup  = "\nCleaning up the working directory used.."

	TrimInstallRunning   = " > Installation running"
	TrimInstallCompleted = " > Installation completed"
	TrimWorkdirKeptFmt   = "\nTrimmed driver left in %s\n"
	TrimNothingRemoved   = " > No references to remove"
	TrimCleanupFailed    = "Unable to remove the working directory"

	TrimExtractFailed    = "Something went wrong.."
	TrimLaunchFailed     = "Error: something went wrong while executing the driver upgrade!"
	TrimUnexpectedFmt    = "Something went wrong: %v"
	TrimPanicFmt         = "unexpected panic: %v"
	TrimPrompterRequired = "prompter is required"

	TrimErrExtract    = "extraction failed"
	TrimErrPatch      = "manifest patch failed"
	TrimErrLaunch     = "installer launch failed"
	TrimErrUnexpected = "unexpected failure"
)
