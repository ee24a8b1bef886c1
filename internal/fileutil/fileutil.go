// Package fileutil holds file permission modes shared by rpntools packages.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for symbol tables and
// expression files written by rpntools and its tests.
const OwnerReadWrite os.FileMode = 0o600
