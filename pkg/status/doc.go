// Package status holds the single user-facing feedback line of a sheet. The
// slot keeps only the latest message; observers registered as Display
// receive every write so hosts can render it however they like.
package status
