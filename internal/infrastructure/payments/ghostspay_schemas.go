package payments

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const purchaseResponseSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "pixCode", "pixQrCode"],
  "properties": {
    "id": { "type": "string", "minLength": 1 },
    "pixCode": { "type": "string", "minLength": 1 },
    "pixQrCode": { "type": "string", "minLength": 1 }
  }
}`

const paymentDetailsResponseSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["status"],
  "properties": {
    "status": { "type": "string", "enum": ["PENDING", "APPROVED", "FAILED", "REJECTED"] }
  }
}`

// Compiled once; both schemas are constants.
var (
	purchaseResponseSchema       = mustCompileSchema(purchaseResponseSchemaJSON)
	paymentDetailsResponseSchema = mustCompileSchema(paymentDetailsResponseSchemaJSON)
)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("payments: invalid response schema: " + err.Error())
	}
	return schema
}

// validateAgainst returns an empty string when body matches schema, otherwise a
// readable list of violations.
func validateAgainst(schema *gojsonschema.Schema, body []byte) string {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err.Error()
	}
	if result.Valid() {
		return ""
	}
	reasons := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		reasons = append(reasons, e.String())
	}
	return strings.Join(reasons, "; ")
}
