package query

import "fmt"

// Dialect renders positional bind parameters.
type Dialect int

const (
	// Dollar numbers parameters as $1, $2, ... (PostgreSQL).
	Dollar Dialect = iota
	// Question uses an anonymous ? for every parameter (SQLite).
	Question
)

// DialectFor returns the parameter style of a database/sql driver name.
func DialectFor(driver string) Dialect {
	if driver == "sqlite" {
		return Question
	}
	return Dollar
}

// Placeholder returns the bind parameter for the n-th argument, counted from 1.
func (d Dialect) Placeholder(n int) string {
	if d == Question {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}
