package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "atlas.yaml"

	// EnvFileName is the dotenv file holding provider credentials.
	EnvFileName = ".env"

	// DataDirName is the default dataset directory.
	DataDirName = "data"

	// WebDirName is the default static front-end directory.
	WebDirName = "web"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// datasetFiles maps each category to its file name inside the data directory.
var datasetFiles = map[Category]string{
	CategoryClimate:    "climate.json",
	CategoryPopulation: "population.json",
	CategoryPlagues:    "plagues.json",
	CategoryReligions:  "religions.json",
	CategoryTechnology: "tech-tree.json",
	CategoryTrade:      "trade-routes.geojson",
	CategoryWars:       "wars.json",
	CategoryWonders:    "wonders.json",
	CategoryRulers:     "rulers.json",
}

// DatasetFile returns the file name of the category's dataset.
func DatasetFile(c Category) (string, bool) {
	name, ok := datasetFiles[c]
	return name, ok
}

// DatasetPath joins the data directory and the category's dataset file.
func DatasetPath(dataDir string, c Category) (string, bool) {
	name, ok := datasetFiles[c]
	if !ok {
		return "", false
	}
	return filepath.Join(dataDir, name), true
}

// CategoryForFile returns the category whose dataset is stored under the base name of path.
func CategoryForFile(path string) (Category, bool) {
	base := filepath.Base(path)
	for c, name := range datasetFiles {
		if name == base {
			return c, true
		}
	}
	return "", false
}
