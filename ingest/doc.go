// Package ingest turns pre-extracted resume text into candidate profiles.
//
// Text extraction from PDF or DOCX happens upstream; this package consumes
// plain text files, splits them into canonical sections by heading
// detection, populates the skill set via the vocabulary extractor, and
// assigns the content-based profile identity. Parsing is deterministic:
// the same text always produces the same profile.
package ingest
