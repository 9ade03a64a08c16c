// Package core defines the shared data model of the mission analyzer.
//
// This package contains:
//   - The Mission record loaded from the input file
//   - Column names used by the loader, filters and reports
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
