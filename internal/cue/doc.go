// Package cue models cue sheets and converts them to and from their
// line-oriented textual form.
//
// The parser is deliberately tolerant: malformed or non-standard input never
// aborts a parse. Every deviation from the strict grammar is recorded as a
// Message on the resulting CueSheet and a defined fallback is applied, so
// callers always receive a populated sheet plus an ordered list of
// diagnostics to judge it by. Only a failure to read the input itself is
// surfaced as an error.
//
// The serializer performs the inverse mapping. Its output is canonical
// rather than byte-faithful: fields appear in a fixed order, comments are not
// preserved, and indentation is configurable. Round trips preserve data, not
// formatting.
package cue
