package config

// Kilnfile mirrors the kiln.yaml project spec on disk.
type Kilnfile struct {
	Version  string            `yaml:"version"`
	Name     string            `yaml:"name"`
	Binaries []BinaryDTO       `yaml:"binaries"`
	Test     []string          `yaml:"test"`
	Database string            `yaml:"database_url"`
	Exclude  []string          `yaml:"exclude"`
	Runtime  []string          `yaml:"runtime_packages"`
	DevTools []string          `yaml:"dev_tools"`
	MigTool  string            `yaml:"migration_tool"`
	Port     int               `yaml:"port"`
	Flags    *FlagsDTO         `yaml:"flags"`
	Deps     map[string]string `yaml:"dependencies"`
	Tools    map[string]string `yaml:"tools"`
}

// BinaryDTO is one binary target declaration.
type BinaryDTO struct {
	Name  string   `yaml:"name"`
	Build []string `yaml:"build"`
}

// FlagsDTO carries the two packaging policy toggles. Pointers distinguish
// "unset" from an explicit false.
type FlagsDTO struct {
	OfflineQueryCheck *bool `yaml:"offline_query_check"`
	RunTests          *bool `yaml:"run_tests"`
}
