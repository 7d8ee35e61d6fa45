// Package filter compiles caller-supplied boolean expressions into contact
// list filters.
//
// An expression sees every contact field at top level plus "id":
//
//	lastName == "Doe" && address.country in ["FR", "BE"]
package filter

import (
	"strings"
	"time"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
	gocache "github.com/patrickmn/go-cache"

	"regcontacts/internal/contacts/models"
	dErrors "regcontacts/pkg/domain-errors"
)

// Func narrows a contact list.
type Func func([]models.Contact) []models.Contact

// Compiler compiles expressions and keeps the programs for reuse.
type Compiler struct {
	programs *gocache.Cache
}

// NewCompiler returns a Compiler keeping programs for ttl after last use
// of the cache. A zero ttl keeps them forever.
func NewCompiler(ttl time.Duration) *Compiler {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Compiler{programs: gocache.New(ttl, 2*ttl)}
}

// Compile turns expression into a Func keeping the contacts it holds true
// for. Contacts on which evaluation fails are dropped.
func (c *Compiler) Compile(expression string) (Func, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "filter expression must not be empty")
	}
	program, err := c.load(expression)
	if err != nil {
		return nil, err
	}
	return func(contacts []models.Contact) []models.Contact {
		out := make([]models.Contact, 0, len(contacts))
		for _, contact := range contacts {
			if matches(program, contact) {
				out = append(out, contact)
			}
		}
		return out
	}, nil
}

func (c *Compiler) load(expression string) (*exprvm.Program, error) {
	if cached, ok := c.programs.Get(expression); ok {
		if program, ok := cached.(*exprvm.Program); ok {
			return program, nil
		}
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid filter expression")
	}
	c.programs.SetDefault(expression, program)
	return program, nil
}

func matches(program *exprvm.Program, contact models.Contact) bool {
	result, err := exprlang.Run(program, environment(contact))
	if err != nil {
		return false
	}
	ok, _ := result.(bool)
	return ok
}

func environment(contact models.Contact) map[string]any {
	env := map[string]any{}
	for key, value := range contact.Record() {
		env[key] = plain(value)
	}
	return env
}

// plain unwraps named Record values so expressions index nested objects as
// ordinary maps.
func plain(v any) any {
	switch t := v.(type) {
	case models.Record:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = plain(vv)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = plain(vv)
		}
		return out
	default:
		return v
	}
}
