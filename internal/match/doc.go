// Package match provides key normalization, Levenshtein distance, and
// "did you mean" suggestions for misspelled gallery record keys.
//
// Key functions:
//   - NormalizeKey: folds case and drops separators ("Image_Src" -> "imagesrc")
//   - Levenshtein: computes edit distance between strings
//   - Similarity: normalized 0..1 similarity of two keys
//   - Suggest: ranks known keys against an unknown one
package match
