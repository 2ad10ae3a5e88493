package store

import "database/sql"

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	stmts := []string{`
CREATE TABLE IF NOT EXISTS companies (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  domain TEXT,
  industry TEXT,
  location TEXT,
  score REAL NOT NULL DEFAULT 0,
  last_updated TEXT NOT NULL,
  created_at TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS opportunities (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  role_type TEXT,
  url TEXT,
  location TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  discovered_date TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS hiring_signals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
  signal_type TEXT,
  description TEXT,
  source_url TEXT,
  confidence REAL NOT NULL DEFAULT 0,
  detected_date TEXT NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_companies_score ON companies(score DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_opportunities_active_date ON opportunities(is_active, discovered_date DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_signals_detected ON hiring_signals(detected_date);`,
		`PRAGMA user_version = 1;`,
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return err
		}
	}
	return tx.Commit()
}
