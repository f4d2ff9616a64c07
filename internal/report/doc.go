// Package report summarizes a booklet build run: which instruments were
// built, how many pages each booklet drew, and what was skipped or failed.
// Writers output the summary as plain text for terminals or as GitHub
// Flavored Markdown for sharing.
package report
