// Package translate turns a parsed old-generation difficulty tree into its
// new-generation counterpart.
//
// The conversion is an ordered list of pure stages. Every stage receives the
// immutable original document plus the output accumulated by earlier stages
// and returns the new output; anomalies go to an injected diagnostic sink,
// so the whole pipeline is side-effect-free and testable by inspecting the
// returned tree and the collected diagnostics.
//
// Stage order is fixed:
//  1. Passthrough: Name, Description, EscortMule copied verbatim
//  2. Resupply: cost re-derived from starting nitra as a call-indexed vector
//  3. Top modules: declarative field relocation with weight-bin flattening
//  4. Enemies: descriptor cleanup, pawn-stat translation, elite rebasing
//
// Documents are handled as raw JSON text through gjson/sjson so the output
// keeps its key insertion order when rendered.
package translate
