package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/faultline/pkg/domain/model"
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// ErrNotStruct is returned when a subject is built from a value that is
// not a struct or a pointer to one.
var ErrNotStruct = goerr.New("validation subject must be a struct")

// TypeKey is the context key carrying the offending Go type
const TypeKey = "type"

// StructSubject exposes the exported fields of a struct type as
// attributes, named in snake case.
type StructSubject struct {
	name  string
	attrs map[types.Attribute]string
}

// NewStructSubject builds a subject from a struct value or a pointer to
// one.
func NewStructSubject(v any) (*StructSubject, error) {
	rt := reflect.TypeOf(v)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, goerr.Wrap(ErrNotStruct, "cannot build subject",
			goerr.V(TypeKey, fmt.Sprintf("%T", v)))
	}

	attrs := make(map[types.Attribute]string, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		attrs[types.Attribute(snakeCase(f.Name))] = f.Name
	}

	return &StructSubject{name: rt.Name(), attrs: attrs}, nil
}

// HasAttribute reports whether the struct declares the attribute
func (x *StructSubject) HasAttribute(name types.Attribute) bool {
	_, ok := x.attrs[name]
	return ok
}

// FullMessage renders message prefixed with the attribute's display label
func (x *StructSubject) FullMessage(name types.Attribute, message string) string {
	return label(name.String()) + " " + message
}

// Service collects go-playground/validator failures into an
// ErrorCollection bound to a struct-backed subject.
type Service struct {
	validator *goValidator.Validate
}

// New creates a validation service
func New() *Service {
	return &Service{
		validator: goValidator.New(goValidator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct validation on v and returns the collection of
// failures. An empty collection means v passed.
func (s *Service) Validate(v any) (*model.ErrorCollection, error) {
	subject, err := NewStructSubject(v)
	if err != nil {
		return nil, err
	}
	col := model.New(subject)

	err = s.validator.Struct(v)
	if err == nil {
		return col, nil
	}

	var verrs goValidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, goerr.Wrap(err, "struct validation failed")
	}

	for _, fe := range verrs {
		attr := types.Attribute(snakeCase(fe.Field()))

		var opts map[string]any
		if fe.Param() != "" {
			opts = map[string]any{"param": fe.Param()}
		}

		if err := col.AddDetail(attr, codeForTag(fe.Tag()), opts); err != nil {
			return nil, goerr.Wrap(err, "failed to record validation failure",
				goerr.V(model.AttributeKey, attr))
		}
	}

	return col, nil
}

// codeForTag maps a validator tag to an error code
func codeForTag(tag string) types.ErrorCode {
	switch tag {
	case "required":
		return types.CodeBlank
	case "max", "lte", "lt":
		return types.CodeTooLong
	case "min", "gte", "gt":
		return types.CodeTooShort
	default:
		return types.CodeInvalid
	}
}

// snakeCase converts an exported field name to its attribute name, e.g.
// "StreetAddress" -> "street_address".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// label turns an attribute name into a display label
func label(attr string) string {
	s := strings.ReplaceAll(attr, "_", " ")
	r := []rune(s)
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}
