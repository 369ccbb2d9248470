// Package query turns request query strings into parameterized SQL filters.
//
// Filter keeps only the parameters an operation declares, Validate checks
// their values against the declared types, and Build assembles a WHERE
// clause from per-resource rules. User input only ever reaches the database
// as bound arguments.
package query
