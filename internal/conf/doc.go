// Package conf resolves the runtime configuration for suncron.
//
// # Load order
//
// Configuration is assembled from three layers, later layers winning
// on the fields they carry:
//
//  1. Built-in defaults (Greenwich, today at local noon)
//  2. The optional persisted file: suncron.toml in the user
//     configuration directory, or the legacy suncron.ini
//  3. Command-line flags and the chosen subcommand
//
// A missing file is benign; a present-but-corrupt file aborts
// resolution. The file may override coordinates only as a pair: a lone
// latitude or longitude is ignored.
//
// # Internal architecture
//
//   - fileConfig: the file layer, with pointer fields so "not set"
//     (nil) is distinct from "set to an empty value".
//
//   - CLIArgs: the command-line layer as raw strings, filled in by the
//     argument collector in main.
//
//   - Config: the immutable resolved result. Built by Resolve, which
//     applies the layers as a pipeline of pure merge steps.
//
//   - Deferred: a parse result stored on the wait subcommand whose
//     failure surfaces only when the value is consumed, so a report
//     run is never aborted by a malformed --offset or --event.
//
//   - Source / FileSource: a narrow loading abstraction so the merge
//     pipeline is testable without real filesystem access.
package conf
