// Package roster provides the business logic for student roster operations.
//
// This package is the heart of the tool, containing all domain logic
// independent of any UI layer. It can be driven by the interactive shell,
// by scripts, or by tests without modification.
//
// # Architecture
//
// The package is organized around a few key concepts:
//
//   - Record: one student's (roll, name, marks) entry, stored as raw strings
//     so that hand-edited files survive a load/save cycle unchanged.
//   - Store: the persistence contract the service operates against,
//     implemented by the CSV-backed file store.
//   - Service: the entry point for every operation (add, delete, edit,
//     search, list, statistics, exports). Each call reloads the full roster
//     from the store, works on it in memory, and writes the full roster back
//     in one pass when it mutates.
//   - ReportWriter: an optional collaborator that renders the roster into a
//     formatted document. A service built without one reports the export as
//     unavailable instead of failing.
//
// # Validation
//
// Input validation happens before any write: an empty name, an empty roll or
// query, and marks that do not parse or fall outside [0, 100] all abort the
// operation with a [ValidationError] and leave the store untouched. Marks are
// never clamped into range.
//
// # Reads are forgiving, writes are strict
//
// Records written by Add and Edit always carry canonical marks formatting
// (see [FormatMarks]). Records read back are taken as-is: statistics
// substitute 0.0 for marks that fail to parse, and the display sort falls
// back to a plain string ordering when any roll is non-numeric. Both are
// deliberate policies for rosters that have been edited by hand.
package roster
