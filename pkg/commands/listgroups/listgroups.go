package listgroups

import (
	"github.com/kaydubbed/PanRuleOrder/pkg/logging"
	"github.com/kaydubbed/PanRuleOrder/pkg/panorama"
)

// Options defines the options for the ListGroups command.
type Options struct {
	// InputPath is the Panorama XML export to read.
	InputPath string
}

// Result holds the device-group names found in the document.
type Result struct {
	Groups []string
}

// ListGroups enumerates the device-groups in a configuration export. It
// never reads an order list and never writes output.
func ListGroups(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.listgroups")
	log.Debug().Str("input", opts.InputPath).Msg("Executing command")

	doc, err := panorama.Load(opts.InputPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Groups: doc.DeviceGroups()}
	log.Info().Int("groupCount", len(result.Groups)).Msg("Command finished")
	return result, nil
}
