package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/kaydubbed/PanRuleOrder/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/kaydubbed/PanRuleOrder/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/kaydubbed/PanRuleOrder/internal/version.Date={{.Date}}
)
