// Package repository implements data access for the Gatherly API on
// top of the database package.
//
// Each repository builds SurrealQL with $variable maps and parses the
// loosely-typed results back into model structs via the helpers in
// helpers.go. Get methods return (nil, nil) for missing records so
// services can decide how to report the absence.
//
// Writes that must be atomic go through database.AtomicBatch: deleting
// a post removes its comments and likes in the same transaction,
// deleting an event removes its attendings and invoices, and creating
// an attending record issues its invoice alongside it.
package repository
