package panorama

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/kaydubbed/PanRuleOrder/pkg/errors"
	"github.com/kaydubbed/PanRuleOrder/pkg/logging"
)

// Rulebase identifies which rule base a section was found under.
type Rulebase string

const (
	RulebasePost Rulebase = "post-rulebase"
	RulebasePre  Rulebase = "pre-rulebase"
)

// Target selects the rule section to operate on: the shared rule base or
// a named device-group. Built once at the CLI boundary; the zero value is
// not a valid target.
type Target struct {
	shared bool
	group  string
}

// SharedTarget selects the shared rule base.
func SharedTarget() Target {
	return Target{shared: true}
}

// GroupTarget selects the rule base of the named device-group.
func GroupTarget(name string) Target {
	return Target{group: name}
}

// IsShared reports whether the target is the shared rule base.
func (t Target) IsShared() bool {
	return t.shared
}

// Group returns the device-group name for a named target.
func (t Target) Group() string {
	return t.group
}

func (t Target) String() string {
	if t.shared {
		return "shared"
	}
	return fmt.Sprintf("device-group %q", t.group)
}

// Section is a located rules container and the rule base it came from.
type Section struct {
	Rules    *etree.Element
	Rulebase Rulebase
}

// FindRulesSection locates the security rules container for the target.
// Post-rulebase rules are preferred; pre-rulebase is the fallback.
func (d *Document) FindRulesSection(target Target) (*Section, error) {
	log := logging.GetLogger("panorama.locator")

	if target.IsShared() {
		for _, rb := range []Rulebase{RulebasePost, RulebasePre} {
			if rules := d.findPath("shared", string(rb), "security", "rules"); rules != nil {
				log.Debug().Str("rulebase", string(rb)).Msg("Found shared security rules")
				return &Section{Rules: rules, Rulebase: rb}, nil
			}
		}
		return nil, errors.New(errors.ErrTargetNotFound,
			"shared security rules not found in pre- or post-rulebase")
	}

	entry := d.deviceGroupEntry(target.Group())
	if entry == nil {
		return nil, errors.Newf(errors.ErrGroupNotFound,
			"device group %q not found", target.Group()).
			WithDetail("group", target.Group())
	}

	for _, rb := range []Rulebase{RulebasePost, RulebasePre} {
		path := d.joinPath(string(rb), "security", "rules")
		if rules := entry.FindElement(path); rules != nil {
			log.Debug().Str("group", target.Group()).Str("rulebase", string(rb)).Msg("Found device-group security rules")
			return &Section{Rules: rules, Rulebase: rb}, nil
		}
	}
	return nil, errors.Newf(errors.ErrTargetNotFound,
		"security rules not found in pre- or post-rulebase for device group %q", target.Group())
}

// DeviceGroups returns every device-group entry name in document order.
func (d *Document) DeviceGroups() []string {
	var names []string
	for _, entry := range d.deviceGroupEntries() {
		if name := entry.SelectAttrValue("name", ""); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// deviceGroupEntry finds a device-group entry by name attribute. Names are
// matched by direct comparison rather than a path predicate so that any
// character a group name may contain is handled.
func (d *Document) deviceGroupEntry(name string) *etree.Element {
	for _, entry := range d.deviceGroupEntries() {
		if entry.SelectAttrValue("name", "") == name {
			return entry
		}
	}
	return nil
}

func (d *Document) deviceGroupEntries() []*etree.Element {
	return d.tree.FindElements("//" + d.joinPath("device-group", "entry"))
}
