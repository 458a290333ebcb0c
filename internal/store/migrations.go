package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	seq              INTEGER PRIMARY KEY AUTOINCREMENT,
	id               TEXT NOT NULL UNIQUE,
	title            TEXT NOT NULL DEFAULT '',
	description      TEXT NOT NULL DEFAULT '',
	person_full_name TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'PENDING',
	priority         TEXT NOT NULL DEFAULT 'MEDIUM',
	date_text        TEXT NOT NULL DEFAULT '',
	due_iso          TEXT NOT NULL DEFAULT '',
	location         TEXT NOT NULL DEFAULT '',
	team             TEXT NOT NULL DEFAULT '',
	category         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS notifications (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	type       TEXT NOT NULL,
	title      TEXT NOT NULL DEFAULT '',
	message    TEXT NOT NULL DEFAULT '',
	date_text  TEXT NOT NULL DEFAULT '',
	task_id    TEXT NOT NULL DEFAULT '',
	user_scope TEXT NOT NULL DEFAULT 'ALL',
	assignee   TEXT NOT NULL DEFAULT ''
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_notifications_task_id ON notifications(task_id);
CREATE INDEX IF NOT EXISTS idx_tasks_person ON tasks(person_full_name);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
