// Package payload holds the corrected review handler that fixreview writes
// into the trucking_desk backend.
package payload

import _ "embed"

// TargetPath is the handler file, relative to the trucking_desk project root.
const TargetPath = "src/reviews/views.py"

// Text is the full replacement content for TargetPath. It is written as-is;
// nothing in this module parses or executes it.
//
//go:embed views.py
var Text string
