// SPDX-License-Identifier: GPL-3.0-or-later

// Package contacts implements an area -> contacts pipeline on top of
// the chain combinator.
//
// The pipeline has four stages, each a [chain.Func] with structured
// span logging in the style of the chain package:
//
//   - [FilepathFunc]: maps an area name to its data file path
//   - [ReadLinesFunc]: reads the file into non-blank lines
//   - [ReadLinesFunc]'s output feeds [ParseRecordsFunc]: one JSON
//     object per line
//   - [ContactsFunc]: converts records into [Contact] models
//
// [NewPeopleFunc] composes all four. The stages are deliberately
// ordinary collaborators: they conform to the combinator's one-in,
// one-out calling convention and impose nothing on it.
package contacts

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// json is the serialization config used throughout this package.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one parsed data file line: a JSON object keyed by field name.
type Record map[string]any

// Contact is one person served by the people endpoint.
type Contact struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// contactFromRecord builds a [Contact] from a [Record].
//
// Both fields are required and must be strings, mirroring model
// validation at the edge of the pipeline.
func contactFromRecord(rec Record) (Contact, error) {
	name, ok := rec["name"].(string)
	if !ok {
		return Contact{}, fmt.Errorf("missing or non-string field %q", "name")
	}
	job, ok := rec["job"].(string)
	if !ok {
		return Contact{}, fmt.Errorf("missing or non-string field %q", "job")
	}
	return Contact{Name: name, Job: job}, nil
}
