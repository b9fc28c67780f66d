// Package types defines the core types and interfaces shared by the cs01
// repository-initialization packages: the file tree sum type, write options
// and reports, repository roots and command results.
package types
