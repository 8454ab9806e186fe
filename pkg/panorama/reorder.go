package panorama

import (
	"github.com/beevik/etree"

	"github.com/kaydubbed/PanRuleOrder/pkg/errors"
	"github.com/kaydubbed/PanRuleOrder/pkg/logging"
)

// ReorderResult reports what the reorder did beyond the tree mutation.
type ReorderResult struct {
	// Ordered counts entries placed by the order list.
	Ordered int
	// Total counts entries in the section.
	Total int
	// Missing are order-list names with no matching entry in the section.
	// A name listed twice surfaces here on its second occurrence.
	Missing []string
	// Unlisted are section entries the order list never named; they keep
	// their original relative order at the end of the section.
	Unlisted []string
}

// ReorderEntries rewrites the child order of a rules section to follow the
// given name order. Entries not named are appended afterwards in their
// original relative order. The entry set is never changed: nothing is
// created, dropped, or modified, only resequenced.
//
// Duplicate entry names within the section are rejected: silently
// collapsing them would drop a rule from the output.
func (d *Document) ReorderEntries(section *Section, order []string) (*ReorderResult, error) {
	log := logging.GetLogger("panorama.reorder")
	rules := section.Rules

	entries := rules.SelectElements(d.qualify("entry"))
	byName := make(map[string]*etree.Element, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.SelectAttrValue("name", "")
		if name == "" {
			return nil, errors.New(errors.ErrParse, "rule entry without a name attribute")
		}
		if _, seen := byName[name]; seen {
			return nil, errors.Newf(errors.ErrDuplicateName,
				"rule name %q appears more than once in the section", name).
				WithDetail("name", name)
		}
		byName[name] = entry
		names = append(names, name)
	}

	result := &ReorderResult{Total: len(entries)}

	sequence := make([]*etree.Element, 0, len(entries))
	for _, want := range order {
		entry, ok := byName[want]
		if !ok {
			result.Missing = append(result.Missing, want)
			continue
		}
		sequence = append(sequence, entry)
		delete(byName, want)
	}
	result.Ordered = len(sequence)

	for _, name := range names {
		if entry, ok := byName[name]; ok {
			sequence = append(sequence, entry)
			result.Unlisted = append(result.Unlisted, name)
		}
	}

	// Splice: drop every child token, whitespace included, then re-add the
	// entries in their new order.
	for len(rules.Child) > 0 {
		rules.RemoveChildAt(0)
	}
	for _, entry := range sequence {
		rules.AddChild(entry)
	}

	log.Info().
		Int("total", result.Total).
		Int("ordered", result.Ordered).
		Int("missing", len(result.Missing)).
		Int("unlisted", len(result.Unlisted)).
		Msg("Section reordered")
	return result, nil
}
