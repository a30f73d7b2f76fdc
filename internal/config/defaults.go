package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultDataPath is the default test-data path
	DefaultDataPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "collection.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultWorkers is the default number of collection workers
	DefaultWorkers = 4
)

// DefaultDirsToIgnore are the default directories to ignore when scanning for data files
var DefaultDirsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"__pycache__",
	"build",
	"dist",
}
