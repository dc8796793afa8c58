// Package settings models arbitrary per-record settings: a schema of named,
// closed-choice settings resolved from configuration, a form field that
// renders and edits them, and the codec that collapses submitted form rows
// into the key/value map stored against a record.
package settings
