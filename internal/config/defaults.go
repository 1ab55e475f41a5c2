package config

const (
	defaultDataDir         = "~/.local/share/databroker"
	defaultResultsDir      = "~/.local/share/databroker/captured"
	defaultOutputDir       = "~/.local/share/databroker/output"
	defaultLogDir          = "~/.local/share/databroker/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultMaxAliasesShown = 3
)

var defaultSites = []string{"spokeo", "mylife", "radaris"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			ResultsDir: defaultResultsDir,
			OutputDir:  defaultOutputDir,
			LogDir:     defaultLogDir,
		},
		Collection: Collection{
			Sites:           append([]string(nil), defaultSites...),
			DecisionPolicy:  PolicyInteractive,
			RelativePolicy:  PolicyInteractive,
			MaxAliasesShown: defaultMaxAliasesShown,
			WriteResults:    true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
