package sln

import "fmt"

// Strategy selects how a solution file encodes its startup project.
type Strategy string

const (
	// StrategyFirstProject treats the first project entry as the startup
	// project and moves the target's entry to the top. Visual Studio falls
	// back to the first entry when it has no per-user choice, so this is the
	// designation the IDE picks up on reload.
	StrategyFirstProject Strategy = "first-project"

	// StrategySection keeps an explicit GlobalSection(StartupProject) and
	// never reorders project entries. Visual Studio ignores the section;
	// it is only useful for tools that read it back, such as slnstart show.
	StrategySection Strategy = "section"
)

// Strategies lists the supported strategies, default first.
var Strategies = []Strategy{StrategyFirstProject, StrategySection}

// ParseStrategy converts a configuration value into a Strategy.
// An empty string selects StrategyFirstProject.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyFirstProject, nil
	}
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (expected %q or %q)", s, StrategyFirstProject, StrategySection)
}
