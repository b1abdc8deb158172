// Package cmdcontext holds the process-wide context shared by the CLI
// commands: the verbosity and manifest path that the root command's
// persistent flags fill in before a command runs.
package cmdcontext

// CmdCtx is the program context shared by the commands.
type CmdCtx struct {
	// CommandName names the cobra command being run. The root command
	// does not set it.
	CommandName string
	// Verbose enables debug-level log output.
	Verbose bool
	// ManifestPath is the path to the YAML build manifest, if one was
	// given via --manifest; empty when identity comes entirely from flags.
	ManifestPath string
	// WorkDir is a working directory for the commands. No command sets or
	// reads it; build and inspect resolve relative paths against the
	// process's current directory.
	WorkDir string
}
