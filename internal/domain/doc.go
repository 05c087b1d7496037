// Package domain contains the core model for soro: the line comparator,
// the sorting algorithms and the small value types shared by the CLI and TUI.
//
// The domain does not depend on YAML parsing, terminals, or the filesystem.
// Infra/adapters map into/from these types.
package domain
