// Package toolbox provides a set of small, stateless tools: an HTML content
// extractor, a math-operations dispatcher, a text analyzer, a CSV/JSON
// processor and a handful of finance formulas.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, yaml/).
package toolbox
