// Package roster persists the people being tracked in SQLite.
//
// Each row holds one identity plus its ignore list, stored as the JSON blob
// produced by identity.IgnoreList.Encode. A blob that cannot be decoded is
// loaded as an empty list and logged; it is rewritten in the current format
// the next time the person's decisions are saved. The collection workflow
// appends accepted relatives while it iterates, so List and Roster always
// read the current table rather than a cached snapshot.
//
// Schema changes bump the version in schema.go; users export the roster to
// CSV, delete the database, and import it again.
package roster
