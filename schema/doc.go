// Package schema defines the typed data model for C4.5 datasets: feature
// kinds, feature value domains, and the ordered feature sequence shared by
// every record of a dataset.
//
// # Overview
//
// The package defines three main categories of types:
//
//  1. Kind: the closed set of feature kinds (Class, ID, Binary, Nominal, Continuous)
//  2. Feature: an immutable named column with a kind and, for ID/Nominal kinds, a value domain
//  3. Schema: an immutable ordered sequence of Features with a 64-bit fingerprint
//
// Feature values are represented by the Value tagged union, which holds a
// domain string, a boolean, a floating-point number, or nothing at all
// (a missing value, written as '?' in C4.5 data files).
//
// # Float Encoding
//
// Feature.ToFloat is the single place where symbolic data becomes numeric:
//   - ID/Nominal values map to their zero-based domain index
//   - Binary/Class values map to 0.0 or 1.0
//   - Continuous values pass through unchanged
//   - Missing values stay missing
//
// The index-based encoding of ID/Nominal values is only meaningful relative
// to a fixed domain ordering; numeric proximity of two encoded values does
// not imply semantic proximity.
package schema
