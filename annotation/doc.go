// Package annotation extracts @define and @optional directives from a
// config node's leading comment lines.
package annotation
