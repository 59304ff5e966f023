// Package magetasks provides organized build tasks for the pco project.
//
// This package contains the build, test, lint, and header conformance tasks
// used by the Magefile. Tasks are grouped into namespaces there.
package magetasks
