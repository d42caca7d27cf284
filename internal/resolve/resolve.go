// Package resolve maps URL paths to and from documentation version segments.
//
// A version segment is a path component of the form "/<major>.<minor>/",
// e.g. "/25.12/". Deployments may sit under an arbitrary prefix ("/docs"),
// and only the first version segment in a path is significant.
package resolve

import "regexp"

// versionSegment matches one version path segment bounded by slashes:
// one or more digits, a dot, one or more digits.
var versionSegment = regexp.MustCompile(`/\d+\.\d+/`)

// BasePath returns the URL prefix preceding the first version segment in
// path. A path with no version segment yields the empty prefix; that is
// not an error, it just means the site is deployed at the root.
func BasePath(path string) string {
	loc := versionSegment.FindStringIndex(path)
	if loc == nil {
		return ""
	}
	return path[:loc[0]]
}

// Rewrite computes the destination for switching the page at current to the
// snapshot identified by the version path token. Only the first version
// segment is replaced; everything before and after it is preserved. A path
// without a version segment maps to the snapshot's landing page under the
// base path, discarding the rest of the current path.
func Rewrite(current, version string) string {
	loc := versionSegment.FindStringIndex(current)
	if loc == nil {
		return BasePath(current) + "/" + version + "/"
	}
	return current[:loc[0]] + "/" + version + "/" + current[loc[1]:]
}
