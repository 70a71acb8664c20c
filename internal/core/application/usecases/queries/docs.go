// Package queries contains read-only use cases. Handlers read straight from the database
// with SQL and return flat views; they never load aggregates or touch the notifier.
package queries
