// Package postgres contains the PostgreSQL implementations of the store
// interfaces. All SQL lives here; queries with a fixed shape are written as
// literal statements, and the listing queries whose filters and sorts
// compose at runtime are built with squirrel.
package postgres
