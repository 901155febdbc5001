package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var swagger struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &swagger))

	assert.Equal(t, "Offer Directory API", swagger.Info.Title)
	for path, methods := range map[string][]string{
		"/views":                        {"post"},
		"/views/{viewID}":               {"get", "delete"},
		"/views/{viewID}/order":         {"put"},
		"/views/{viewID}/page":          {"put"},
		"/views/{viewID}/rows-per-page": {"put"},
		"/fetches":                      {"get"},
	} {
		for _, m := range methods {
			assert.Contains(t, swagger.Paths[path], m, path)
		}
	}
	assert.Contains(t, swagger.Definitions, "controllers.ViewResponse")
}
