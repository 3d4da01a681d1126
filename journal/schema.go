package journal

const Schema = `
CREATE TABLE IF NOT EXISTS rejections (
	run_id TEXT NOT NULL,
	line INTEGER NOT NULL,
	type TEXT NOT NULL,
	client INTEGER NOT NULL,
	tx INTEGER NOT NULL,
	reason TEXT NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rejections_run ON rejections(run_id);
`
