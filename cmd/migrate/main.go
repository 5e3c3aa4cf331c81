// Command migrate applies the prediction_history schema to the PostgreSQL
// or SQLite database behind the history store.
//
// Usage:
//
//	migrate up
//	migrate down
//	migrate steps -- -1
//	migrate version
//	migrate force 1
//
// The target comes from --dsn, then VERDANT_DB_DSN, then the [database]
// section of config.toml when the history backend is postgres or sqlite.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
