// SPDX-License-Identifier: GPL-3.0-or-later

package contacts

import "github.com/chainfn/chain"

// NewPeopleFunc composes the four contacts stages into the full
// area -> contacts pipeline.
//
// The composed pipeline behaves exactly like calling the four stages by
// hand in order: create the file path, read the lines, parse the
// records, convert to contacts. The first failing stage aborts the
// pipeline and its error is returned unchanged.
func NewPeopleFunc(cfg *Config, logger chain.SLogger) *chain.Composable[string, []Contact] {
	return chain.Then4(
		chain.Func[string, string](NewFilepathFunc(cfg, logger)),
		chain.Func[string, []string](NewReadLinesFunc(cfg, logger)),
		chain.Func[[]string, []Record](NewParseRecordsFunc(cfg, logger)),
		chain.Func[[]Record, []Contact](NewContactsFunc(cfg, logger)),
	)
}
