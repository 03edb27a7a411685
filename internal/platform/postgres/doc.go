// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, on top of database/sql with the pgx
// driver. It maps PostgreSQL constraint errors to store errors and embeds the
// goose migrations that create the schema.
package postgres
