// Package lib provides a Go SDK for running reminder-sink reminders
// programmatically.
//
// This package allows applications to discover and run reminder scripts,
// aggregate the expired reminders and manage silences without shelling out
// to the reminder-sink CLI binary. It is useful for status bars, launcher
// menus, and building tools on top of reminder-sink.
//
// # Quick Start
//
// Create a client and run the reminders of one or more script directories:
//
//	client, err := lib.New(lib.Config{
//	    SearchDirs: []string{"/home/user/reminders"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rep, err := client.Run(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range rep.NameEntries {
//	    fmt.Println(name)
//	}
//
// # Scripts
//
// Reminder scripts are plain executable files. A script is enabled when it
// has the executable bit set or its file name ends in ".enabled". Scripts
// talk back through their exit code:
//
//   - 0: the reminder is satisfied, nothing to report.
//   - 2: the reminder expired, report it by script name.
//   - 3: the reminder expired, report every stdout line separately.
//
// Any other exit code, or a script that cannot run at all, marks the run as
// failed. Use [Client.ListScripts] to see what a run would pick up and
// [Client.TestScript] to execute a single script regardless of its enabled
// state.
//
// # Silences
//
// Silences hide expired reminders from the report for a period of time
// without touching the scripts:
//
//	client.Silence(ctx, "weight", 24*time.Hour)
//	client.Silence(ctx, "buy-*", time.Hour)
//
// Patterns support glob wildcards and match both script names and report
// output lines. Silences are persisted in a plain text file shared with the
// CLI, so silencing from code hides the reminder from `reminder-sink run`
// too. See [SilenceStoreMemory] for a non-persistent alternative.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: the script or resource does not exist.
//   - [ErrNotValid]: invalid input (e.g. no search dirs, bad silence pattern).
//
// # Logging
//
// The SDK is silent by default. Pass a [log.Logger] implementation in
// [Config].Logger to receive structured log output, including the stderr of
// the executed scripts at debug level.
//
// # Testing
//
// Use [SilenceStoreMemory] and a temporary script directory to write tests
// without touching the user's silence file:
//
//	client, _ := lib.New(lib.Config{
//	    SearchDirs: []string{t.TempDir()},
//	    Silences:   lib.SilenceStoreMemory,
//	})
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines. The file
// silence store serializes access with a lock file next to the silence file,
// so concurrent clients and CLI invocations do not corrupt it.
package lib
