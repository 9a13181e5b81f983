package internal

import "fmt"

// LoadError represents a failure reading a top-level input (file missing,
// unreadable, empty). Row-level problems never surface as errors; they
// degrade to dropped-row counts on the tables.
type LoadError struct {
	Path string
	Op   string // "open", "read", "header"
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure interpreting source data that cannot
// be recovered row by row, such as an undecodable cache snapshot.
type ParseError struct {
	Source string // "csv", "sqlite", "cache"
	Key    string // file path or table name
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during report export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
