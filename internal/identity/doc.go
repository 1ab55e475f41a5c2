// Package identity defines the typed data model shared by the matching,
// validation, and relative-extraction code: the person being searched for,
// the records brokers return, and the persisted memory of past rejections.
//
// An Identity is mutated in place as decisions are made; its IgnoreList only
// ever grows. Broker records are transient and only their IDs survive a run.
package identity
