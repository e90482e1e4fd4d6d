// Package validator checks uploaded assessment bundles against the embedded
// JSON Schema. It only looks at shape; recomputing scores is the engine's job.
package validator

import (
	"bytes"
	"embed"
	"errors"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemas embed.FS

// bundleSchemaID must match the $id inside schemas/bundle.schema.json
const bundleSchemaID = "https://vantageassess.local/schemas/bundle.schema.json"

// Violation is one place where a bundle breaks the schema. Path is a JSON
// pointer into the uploaded document.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of a schema check
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// Validator holds the compiled bundle schema. It is safe for concurrent use.
type Validator struct {
	bundle *jsonschema.Schema
}

// New compiles the embedded bundle schema
func New() (*Validator, error) {
	bundle, err := compile("schemas/bundle.schema.json", bundleSchemaID)
	if err != nil {
		return nil, err
	}
	return &Validator{bundle: bundle}, nil
}

func compile(file, id string) (*jsonschema.Schema, error) {
	f, err := schemas.Open(file)
	if err != nil {
		return nil, eris.Wrapf(err, "open schema %s", file)
	}
	defer f.Close()

	doc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, eris.Wrapf(err, "parse schema %s", file)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(id, doc); err != nil {
		return nil, eris.Wrapf(err, "register schema %s", file)
	}
	schema, err := c.Compile(id)
	if err != nil {
		return nil, eris.Wrapf(err, "compile schema %s", file)
	}
	return schema, nil
}

// ValidateBundle checks the shape of an exported bundle. Violations are
// ordered by path.
func (v *Validator) ValidateBundle(data []byte) Result {
	// numbers stay json.Number so 25.5 fails "type": "integer"
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return rejected(Violation{Path: "/", Message: "invalid JSON: " + err.Error()})
	}

	err = v.bundle.Validate(doc)
	if err == nil {
		return Result{Valid: true}
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return rejected(Violation{Path: "/", Message: err.Error()})
	}
	return rejected(leaves(ve, nil)...)
}

func rejected(violations ...Violation) Result {
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Path < violations[j].Path
	})
	return Result{Valid: false, Violations: violations}
}

// leaves flattens the cause tree. Inner nodes only say "a subschema failed".
func leaves(ve *jsonschema.ValidationError, out []Violation) []Violation {
	if len(ve.Causes) == 0 {
		return append(out, Violation{Path: pointer(ve.InstanceLocation), Message: ve.Error()})
	}
	for _, cause := range ve.Causes {
		out = leaves(cause, out)
	}
	return out
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func pointer(location []string) string {
	var b strings.Builder
	for _, token := range location {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(token))
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
