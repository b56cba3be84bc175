package db

// SchemaSQL is the complete schema for a tempo store.
//
// This is the single source of truth for the database layout. Tests load it
// via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so any
// drift between repository code and schema fails immediately with
// "no such column".
//
// Timestamps are RFC 3339 text in UTC. A NULL end_date marks an ongoing
// mission.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS missions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT
);
`

// GetSchemaSQL returns the schema SQL for initialization and tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
