// Package report renders timing results for people and programs.
//
// Three renderings are provided:
//
//   - Table:    an aligned two-column table with localized labels;
//   - CopyText: one "Label: value unit" line per parameter, the format placed
//     on the clipboard by the calculator's "copy all results" action;
//   - JSON:     the stable ResultV1 schema, keyed by snake_case names.
//
// Labels exist in English and Simplified Chinese. MatchLanguage maps a
// locale string such as "zh_CN.UTF-8" to one of the supported tags.
package report
