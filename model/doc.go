// Package model holds the intermediate representation the model builder
// produces: the algebraic Type/AnnType data model, plus the warning
// collector that accumulates non-fatal diagnostics during a build.
package model
