// Package repoconfig renders and reads the repository configuration file.
//
// The configuration is a three-level mapping, section -> subsection ->
// setting, kept in insertion order so the rendered file is stable:
//
//	[core]
//	  bare = false
//	  repositoryformatversion = 0
//
// A subsection named "" renders as a plain [section] header, any other name
// as [section "subsection"].
package repoconfig
