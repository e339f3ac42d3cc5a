package contact

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/cecoladevelopment/site-backend/internal/errors"
)

// payloadSchema describes the shape of a JSON contact body. Presence of the
// fields is checked by Validate so that every missing field is reported; a
// null field decodes to "" and is reported there as missing.
const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name":    {"type": ["string", "null"]},
    "company": {"type": ["string", "null"]},
    "email":   {"type": ["string", "null"]},
    "problem": {"type": ["string", "null"]}
  }
}`

var schema = mustSchema(payloadSchema)

func mustSchema(source string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(err)
	}
	return s
}

// ValidatePayload rejects JSON bodies that are not an object of string or
// null fields.
func ValidatePayload(raw []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.NewInvalidInputError("Invalid request body", "request body must be a JSON object")
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewInvalidInputError("Invalid request body", strings.Join(errs, "; "))
	}
	return nil
}
