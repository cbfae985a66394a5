package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration loading
var (
	ErrSchemaNotFound   = goerr.New("schema file not found")
	ErrInvalidSchema    = goerr.New("invalid schema file")
	ErrDocumentNotFound = goerr.New("document file not found")
	ErrInvalidDocument  = goerr.New("invalid document file")
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
)

// Context keys for error values
const (
	PathKey   = "path"
	LevelKey  = "level"
	FormatKey = "format"
)
