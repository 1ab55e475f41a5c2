// Package results writes accepted broker records to per-person CSV files,
// one file per site per day.
package results
