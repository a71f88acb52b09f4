// Package output provides structured output handling for the prompt-merge CLI.
//
// This package handles both human-readable and JSON output formats. All
// diagnostic text goes to the error stream; normal output (the catalog
// listing, merge summaries) goes to the standard output stream.
//
// # Printer
//
// The Printer is the primary interface for command output. It handles format
// switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer = printer.WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": "Merged 3 template(s)"})
//	printer.Error(err)
//
// # Styling
//
// Human-readable output uses lipgloss styles that disable automatically when
// output is piped.
//
// # Exit Codes
//
// The package defines one exit code per failure class:
//
//	output.ExitSuccess    // 0: success, or a clean cancellation
//	output.ExitValidation // 1: duplicate/unknown selection, empty catalog
//	output.ExitUsage      // 2: unrecognized flags, bad arguments
//	output.ExitConfig     // 3: missing templates root, bad config file
//	output.ExitIO         // 4: unreadable source, unwritable output
//
// Errors created through the constructors carry their code to both the JSON
// error output and the process exit status:
//
//	output.NewConfigError("templates directory not found: ./templates")
//	output.NewIOError("reading template a/one.md: permission denied")
package output
