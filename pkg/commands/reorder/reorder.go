package reorder

import (
	"github.com/kaydubbed/PanRuleOrder/pkg/logging"
	"github.com/kaydubbed/PanRuleOrder/pkg/panorama"
)

// Options defines the options for the Reorder command.
type Options struct {
	// InputPath is the Panorama XML export to read.
	InputPath string
	// OrderPath is the CSV file holding the desired rule order.
	OrderPath string
	// OutputPath is where the transformed document is written.
	OutputPath string
	// Target selects the shared rule base or a device-group.
	Target panorama.Target
	// Indent re-indents the output when greater than zero.
	Indent int
}

// Result describes what the reorder did, for CLI reporting.
type Result struct {
	// Rulebase is the rule base the section was found under.
	Rulebase panorama.Rulebase
	// Ordered counts entries placed by the order list, Total all entries.
	Ordered int
	Total   int
	// Missing are CSV names absent from the document (skipped).
	Missing []string
	// Unlisted are document entries the CSV never named (appended last).
	Unlisted []string
}

// Reorder runs the full pipeline: load the document, locate the target
// section, read the order list, resequence the entries, write the output.
func Reorder(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.reorder")
	log.Debug().
		Str("input", opts.InputPath).
		Str("order", opts.OrderPath).
		Str("output", opts.OutputPath).
		Stringer("target", opts.Target).
		Msg("Executing command")

	doc, err := panorama.Load(opts.InputPath)
	if err != nil {
		return nil, err
	}

	section, err := doc.FindRulesSection(opts.Target)
	if err != nil {
		return nil, err
	}

	order, err := panorama.ReadOrderFile(opts.OrderPath)
	if err != nil {
		return nil, err
	}

	reordered, err := doc.ReorderEntries(section, order)
	if err != nil {
		return nil, err
	}

	if err := doc.Save(opts.OutputPath, opts.Indent); err != nil {
		return nil, err
	}

	result := &Result{
		Rulebase: section.Rulebase,
		Ordered:  reordered.Ordered,
		Total:    reordered.Total,
		Missing:  reordered.Missing,
		Unlisted: reordered.Unlisted,
	}
	log.Info().
		Str("rulebase", string(result.Rulebase)).
		Int("total", result.Total).
		Msg("Command finished")
	return result, nil
}
