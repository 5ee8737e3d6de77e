// Package parser reads C4.5 dataset files: the '.names' schema grammar and
// the '.data' records grammar.
//
// # Grammars
//
// Both file types are line-oriented. Every line is first normalized by
// TrimLine: the '//' end-of-line comment is stripped, surrounding
// whitespace removed, and a single trailing period dropped. Lines that end
// up empty are blank and ignored.
//
// A '.names' file declares the class feature with the literal line '0, 1'
// (conventionally first) and each remaining feature as
// 'name: value1, value2, ...'. The first non-class feature becomes the ID
// feature; a single value starting with 'continuous' declares a continuous
// feature; the exact value pair {0, 1} declares a binary feature;
// everything else is nominal. The produced schema always lists the class
// feature last, because '.data' rows carry the class in the final column.
//
// A '.data' file holds one comma-delimited record per non-blank line, with
// '?' marking a missing value.
//
// # Failure Policy
//
// Schema parsing is all-or-nothing: a structural problem aborts with no
// partial schema. Record parsing is best-effort: a malformed row is
// skipped, reported through the configured DiagnosticSink, and parsing
// continues — real-world datasets are dirty, and one bad row must not
// discard the rest of the file.
package parser
