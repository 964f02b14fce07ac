package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the interpreter, environment, permissions and PATH setup"

	DoctorHealthCheckFmt = "🏥 Checking pypippark environment at %s...\n"

	DoctorCheckNameInterpreter = "Interpreter"
	DoctorCheckNameEnvironment = "Environment"
	DoctorCheckNameAccess      = "Access"
	DoctorCheckNameExecutables = "Executables"
	DoctorCheckNamePath        = "Path"
	DoctorCheckNameShellRC     = "ShellRC"

	DoctorInterpreterFoundFmt   = "Found %s at %s"
	DoctorInterpreterMissingFmt = "Python interpreter %q not found on PATH"
	DoctorInterpreterRecommend  = "Install Python 3 or set venv.python (or --python) to an interpreter that exists."

	DoctorEnvMissingFmt       = "Virtual environment not created yet: %s"
	DoctorEnvMissingRecommend = "Run `pypippark install <package>` once to create it."
	DoctorEnvNotDirFmt        = "%s exists but is not a directory"
	DoctorEnvNotDirRecommend  = "Move or remove the path, or choose another location."
	DoctorEnvExistsFmt        = "Virtual environment exists: %s"

	DoctorAccessOKFmt          = "Writable: %s"
	DoctorAccessDeniedFmt      = "Not writable: %s"
	DoctorAccessRecommendFmt   = "Run `sudo pypippark list` once to repair ownership, or fix the permissions of %s."
	DoctorExecutableFoundFmt   = "Found %s"
	DoctorExecutableMissingFmt = "Missing %s"
	DoctorExecutableRecommend  = "The environment looks incomplete; remove it and let pypippark recreate it."

	DoctorPathOKFmt         = "%s is on PATH"
	DoctorPathMissingFmt    = "%s is not on PATH"
	DoctorPathRecommend     = "Run `pypippark path` to add it to your shell startup file."
	DoctorShellRCOKFmt      = "%s puts the environment on PATH"
	DoctorShellRCMissingFmt = "%s does not reference the environment"
	DoctorShellRCFailedFmt  = "Could not read %s: %v"

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorResultLineFmt   = "%s %-12s %s\n"

	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorSuccessSummary = "✅ All checks passed."
	DoctorFailureSummary = "❌ Some checks failed."
)
