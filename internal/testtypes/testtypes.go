// Package testtypes provides the shared record fixtures used by the engine
// tests.
package testtypes

import (
	"github.com/Morgahl/structify/schema"
)

// NewRegistry builds a registry with the standard test fixtures:
//
//   - Address: street, city (both defaulting to "")
//   - User: name (required, no default), email, address
//   - Account: owner (required, defaults to "root"), quota (defaults to 10)
//   - Label: text (defaults to "")
func NewRegistry() *schema.Registry {
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Type{
		Name: "Address",
		Fields: []schema.Field{
			{Name: "street", Default: ""},
			{Name: "city", Default: ""},
		},
	})
	reg.MustRegister(schema.Type{
		Name: "User",
		Fields: []schema.Field{
			{Name: "name", Required: true},
			{Name: "email"},
			{Name: "address"},
		},
	})
	reg.MustRegister(schema.Type{
		Name: "Account",
		Fields: []schema.Field{
			{Name: "owner", Required: true, Default: "root"},
			{Name: "quota", Default: 10},
		},
	})
	reg.MustRegister(schema.Type{
		Name: "Label",
		Fields: []schema.Field{
			{Name: "text", Default: ""},
		},
	})
	return reg
}
