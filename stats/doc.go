// Package stats facilitates the retrieval of statistics about a chunk enumeration
package stats
