// Package convert drives a whole-document conversion from the old
// difficulty-configuration generation to the new one.
//
// It owns everything around the translator proper: the multi-line
// description workaround runs over the raw text before parsing, the
// translated tree is rendered compact or indented, and the preserved
// description lines are put back in whichever way the chosen form allows.
// The target file is written in one shot only after the whole document
// converted cleanly, so a failed run never leaves a partial target behind.
package convert
