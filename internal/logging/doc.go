// Package logger provides leveled logging for SaltPass CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic color prefixes.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only user-facing warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()            // Shown with --verbose or --debug
//	Logger.Debugf()           // Shown only with --debug
//	Logger.Warnf()            // Shown with --verbose or --debug
//	Logger.WarnfUser()        // Always shown (user-facing warnings)
//	Logger.Errorf()           // Always shown
//	Logger.ErrorfAndReturn()  // Logs and returns the error (for RunE)
//
// Commands create a logger in their PersistentPreRun from the root flags.
// The logger never receives the master secret or any derived password.
package logger
