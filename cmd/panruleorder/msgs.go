package main

// Short messages (one-liners)
const (
	MsgRootShort = "Reorder Panorama security policies from a CSV order list"
	MsgRootLong = `panruleorder rewrites the order of security-policy entries inside a
Panorama XML configuration export. The desired order comes from a CSV
file (first field of each row is a rule name). Rules in the document but
not in the CSV keep their relative order at the end of the rule base;
CSV names not present in the document are reported and skipped.

The tool targets one section only: the shared rule base (--use-shared)
or a named device-group (--target). Post-rulebase rules are preferred,
pre-rulebase is the fallback. Everything outside the chosen section is
left as it was.`

	// Status messages
	MsgUsingRulebase   = "Using %s rules for %s\n"
	MsgAvailableGroups = "Available device groups:"
	MsgNoGroups        = "  (no device groups found)"
	MsgGroupItem       = "  - %s\n"
	MsgWrittenFormat   = "Reordered configuration written to %s"
	MsgSummaryFormat   = "%d of %d rules placed by the order list\n"

	// Notice messages
	MsgMissingHeader  = "Rules in the order list but not in the document (skipped):"
	MsgUnlistedHeader = "Rules not in the order list (kept at the end, original order):"
	MsgNoticeItem     = "  - %s\n"

	// Error messages
	MsgErrNoTarget = "a target is required: use --target <device-group> or --use-shared"
	MsgErrArgCount = "expected <input-xml> <order-csv> <output-xml>, got %d argument(s)"
	MsgErrLoadCfg  = "failed to load configuration: %w"
	MsgErrorPrefix = "Error: %v"

	// Flag descriptions
	MsgFlagTarget      = "Device group whose rule base is reordered"
	MsgFlagUseShared   = "Reorder the shared rule base instead of a device group"
	MsgFlagListTargets = "List available device groups and exit"
	MsgFlagIndent      = "Re-indent the output with N spaces (0 preserves formatting)"
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
