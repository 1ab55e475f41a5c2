// Package textutil provides text helpers shared by the name matching code, the
// roster store, and the result writers.
//
// The primary use cases are:
//   - Collapsing free-text whitespace scraped from broker pages
//   - Title-casing names and localities the way the roster stores them
//   - Sanitizing filenames and path segments for safe filesystem use
//
// Keep these helpers free of matching policy; rules about which name forms are
// equivalent live in the names and matching packages.
package textutil
