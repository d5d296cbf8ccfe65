// Package output provides structured output and error handling for the snitch CLI.
//
// # Printer
//
// The Printer writes the rendered report to stdout and diagnostics to
// stderr. It switches between human and JSON output based on the --json
// flag, and styles human diagnostics only when the error stream is a TTY:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.ErrOrStderr())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Document(rendered)     // the report, followed by a newline
//	printer.Warn("--wrap ignored") // "Warning: ..." on stderr
//	printer.Error(err)             // "Error: ..." on stderr, or {"error", "code"} in JSON mode
//
// Report output itself is never styled: it goes to files and pull request
// bodies as often as to terminals.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad flags, unknown report, nothing to report)
//	output.ExitSystemError // 2: System error (gh missing or failing, I/O error)
//
// Errors carry their code in *ExitError; main calls GetExitCode once, at
// the top, so nothing below it exits the process.
//
// # Logging
//
// NewLogger returns a log/slog logger on stderr for --debug and
// --log-level diagnostics.
package output
