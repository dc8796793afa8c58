// Package uniuri generates random identifiers, used to tag requests that
// arrive without an X-Request-ID header.
package uniuri
