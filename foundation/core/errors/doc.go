// Package errors provides the module-scoped error constructors used by every
// chronos package.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Builds *error.Error values with a consistent detail layout
//              ("module", "operation", "field", "value", "expected") so that
//              callers and log processors can classify failures uniformly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-10-19 v0.2.0: Constructors per date/time error kind, builder kept
//
// Usage:
//
//	err := errors.InvalidZone(errors.ModuleDatetime, "New", "local", "zone must not be local")
//	if errors.ExtractField(err) == "zone" { ... }
package errors
