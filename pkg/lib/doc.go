// Package lib provides a Go SDK to embed the pomo timer in other programs.
//
// This package runs the same pomodoro cycle as the pomo CLI without shelling
// out to the binary. It is useful for status bar integrations, bots and
// tooling that want a run summary back.
//
// # Quick Start
//
// Create a client and run a cycle until the target is reached or the context
// is cancelled:
//
//	client, err := lib.New(lib.Config{Out: os.Stdout})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	summary, err := client.RunCycle(ctx, lib.CycleOpts{MaxPomodoros: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.Outcome, summary.CompletedPomodoros)
//
// # Profiles
//
// Cycle options can be loaded from the same YAML profile the CLI uses:
//
//	opts, err := client.LoadProfile(ctx, "/home/me/.pomo/config.yaml")
//
// # Cancellation
//
// Cancelling the context is how a run is interrupted. It is not an error:
// [Client.RunCycle] returns a summary with [OutcomeInterrupted].
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: The profile file does not exist.
//   - [ErrNotValid]: Invalid input (e.g. a profile with negative durations).
//
// # Testing
//
// Set [Config].Sleep to a function that returns right away so the cycle runs
// without waiting on the wall clock.
package lib
