// Package render turns price rows into the two output formats the tool
// offers: a grid table for the terminal and an HTML snapshot.
package render
