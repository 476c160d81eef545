package schema

// schema holds the single table backing the sql key-value medium
const schema = `CREATE TABLE IF NOT EXISTS notebook_kv (
	k VARCHAR(255) PRIMARY KEY,
	v TEXT
)`

const dropSchema = `DROP TABLE notebook_kv`
