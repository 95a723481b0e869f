// Package schema embeds the SQLite schema of the gazetteer index.
package schema

import _ "embed"

// Schema creates the index tables.
//
//go:embed schema.sql
var Schema string

// Indexes creates the secondary indexes after a bulk load.
//
//go:embed indexes.sql
var Indexes string
