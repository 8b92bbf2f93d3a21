package upstream

import (
	"embed"
	"io/fs"
	"strings"

	"hawaiielite-properties/pkg/logger"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://schemas.hawaiieliterealestate.com/"

// Names of the embedded response schemas.
const (
	SchemaZillowSearch  = "zillow-search.json"
	SchemaZillowImages  = "zillow-images.json"
	SchemaObject        = "object.json"
	SchemaRedfinSearch  = "redfin-search.json"
	SchemaWordPressList = "wordpress-list.json"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()

	err := fs.WalkDir(schemaFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemaFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		name := strings.TrimPrefix(path, "schemas/")
		return compiler.AddResource(schemaBaseURL+name, file)
	})
	if err != nil {
		logger.GlobalLogger.Fatalf("failed to load response schemas: %v", err)
	}

	for _, name := range []string{SchemaZillowSearch, SchemaZillowImages, SchemaObject, SchemaRedfinSearch, SchemaWordPressList} {
		schema, err := compiler.Compile(schemaBaseURL + name)
		if err != nil {
			logger.GlobalLogger.Fatalf("failed to compile schema %s: %v", name, err)
		}
		compiledSchemas[name] = schema
	}
}

// Schema returns a compiled response schema, or nil for an unknown name.
func Schema(name string) *jsonschema.Schema {
	return compiledSchemas[name]
}
