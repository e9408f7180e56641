package tailor

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/generated_content.json
var contentSchema string

var contentSchemaLoader = gojsonschema.NewStringLoader(contentSchema)

// ContentSchema returns the JSON schema every generated block must satisfy.
func ContentSchema() string { return contentSchema }

var errNotJSON = errors.New("reply is not valid JSON")

// validateContent checks raw against the content schema. A decode failure is
// reported as errNotJSON so callers can tell it apart from a schema violation.
func validateContent(raw []byte) error {
	res, err := gojsonschema.Validate(contentSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.Wrap(errNotJSON, err.Error())
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
