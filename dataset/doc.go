// Package dataset holds the built-in campus dataset used to seed new
// record stores and to answer queries when no store is configured.
package dataset
