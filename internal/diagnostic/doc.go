// Package diagnostic provides the advisory reporting channel used during
// conversion.
//
// Fatal conditions travel as ordinary errors; everything that merely omits or
// defaults a value is reported here and never affects control flow.
//
// Key capabilities:
//   - Unknown top-level field and pawn-stat warnings with nearest-name suggestions
//   - Deprecated and mistyped enemy-control notices
//   - Non-vanilla elite base detection notices
//   - A Sink interface so the translator stays free of I/O
package diagnostic
