// Package ruleschema validates .rbx rule files against an embedded CUE
// schema of the wire format.
package ruleschema

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce sync.Once
	schemaVal  cue.Value
	schemaErr  error
	schemaCtx  *cue.Context
)

// ValidationError reports why a rule file does not match the wire schema.
// Details holds the full CUE error listing, one finding per line.
type ValidationError struct {
	Details string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rule does not match wire schema:\n%s", e.Details)
}

func compiledSchema() (cue.Value, *cue.Context, error) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		v := schemaCtx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			schemaErr = fmt.Errorf("compiling embedded schema: %w", err)
			return
		}
		schemaVal = v.LookupPath(cue.ParsePath("#Rule"))
		if err := schemaVal.Err(); err != nil {
			schemaErr = fmt.Errorf("resolving #Rule: %w", err)
		}
	})
	return schemaVal, schemaCtx, schemaErr
}

// Validate checks a .rbx file's bytes against the wire schema. Returns a
// *ValidationError describing every mismatch, or nil when the file conforms.
func Validate(data []byte) error {
	schema, ctx, err := compiledSchema()
	if err != nil {
		return err
	}

	expr, err := cuejson.Extract("rule.rbx", data)
	if err != nil {
		return &ValidationError{Details: cueerrors.Details(err, nil)}
	}
	value := ctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return &ValidationError{Details: cueerrors.Details(err, nil)}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Details: cueerrors.Details(err, nil)}
	}
	return nil
}
