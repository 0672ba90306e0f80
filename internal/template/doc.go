// Package template holds the fixed template catalog and the renderer that
// turns site-key bytes into printable credentials.
//
// A template is a string of class codes; every class code has one immutable
// alphabet. The catalog is keyed by (Purpose, Kind) and is shared by every
// algorithm version.
package template
