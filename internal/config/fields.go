package config

// Field maps one recognised configuration key onto its BenchmarkConfig field
// and the hyperfine flag it turns into.
type Field struct {
	// Key is the spelling used in configuration files
	Key string
	// GoField is the BenchmarkConfig struct field holding the value
	GoField string
	// Flag is the hyperfine flag emitted for the field, empty for the
	// positional command
	Flag string
}

// Key names as they appear in configuration files.
const (
	KeyCommand       = "command"
	KeyParameterList = "parameter-list"
	KeyPrepare       = "prepare"
	KeyCleanup       = "cleanup"
	KeyRuns          = "runs"
	KeyShowOutput    = "show-output"
	KeyExportJSON    = "export-json"
	KeyWarmup        = "warmup"
	KeyMinRuns       = "min-runs"
	KeyMaxRuns       = "max-runs"
)

// Fields lists every recognised key in hyperfine emission order. The command
// is always last since it becomes the trailing positional argument.
var Fields = []Field{
	{Key: KeyParameterList, GoField: "ParameterLists", Flag: "--parameter-list"},
	{Key: KeyPrepare, GoField: "Prepare", Flag: "--prepare"},
	{Key: KeyCleanup, GoField: "Cleanup", Flag: "--cleanup"},
	{Key: KeyRuns, GoField: "Runs", Flag: "--runs"},
	{Key: KeyShowOutput, GoField: "ShowOutput", Flag: "--show-output"},
	{Key: KeyExportJSON, GoField: "ExportJSON", Flag: "--export-json"},
	{Key: KeyWarmup, GoField: "Warmup", Flag: "--warmup"},
	{Key: KeyMinRuns, GoField: "MinRuns", Flag: "--min-runs"},
	{Key: KeyMaxRuns, GoField: "MaxRuns", Flag: "--max-runs"},
	{Key: KeyCommand, GoField: "Command"},
}

// LookupField returns the Field registered for key.
func LookupField(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// FlagFor returns the hyperfine flag for key. It panics on keys that are not
// in Fields, which is a programming error.
func FlagFor(key string) string {
	f, ok := LookupField(key)
	if !ok {
		panic("config: unknown field key " + key)
	}
	return f.Flag
}
