package framework

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/statikomand/komand"
	"github.com/statikomand/komand/suggest"
)

// Field tags understood by BuildParser and Bind.
//
//	name      label the value binds under, lowercased field name if empty
//	flags     comma separated flag tokens, fields without it are positional
//	default   value applied by Bind when the argument is absent
//	desc      help text
//	values    comma separated static completion values
//	completer name of a completer in the suggest registry
const (
	tagName      = "name"
	tagFlags     = "flags"
	tagDefault   = "default"
	tagDesc      = "desc"
	tagValues    = "values"
	tagCompleter = "completer"
)

// BuildParser declares one komand argument per exported field of param.
// Bool fields become bare flags and require a flags tag, string and
// int64 fields become value flags when a flags tag is present and
// positionals otherwise. param must be a pointer to a struct.
func BuildParser(param any) (*komand.Parser, error) {
	v, err := structValue(param)
	if err != nil {
		return nil, err
	}
	tp := v.Type()

	_, desc := Use(param)
	p := komand.NewParser(komand.WithDescription(desc))
	for i := 0; i < v.NumField(); i++ {
		f := tp.Field(i)
		if !f.IsExported() || f.Type.Kind() == reflect.Struct {
			continue
		}

		opts := []komand.ArgumentOption{komand.WithLabel(fieldLabel(f))}
		if desc := f.Tag.Get(tagDesc); desc != "" {
			opts = append(opts, komand.WithHelp(desc))
		}
		if completer := fieldCompleter(f); completer != nil {
			opts = append(opts, komand.WithCompleter(completer))
		}

		tokens := fieldFlags(f)
		switch f.Type.Kind() {
		case reflect.Bool:
			if len(tokens) == 0 {
				return nil, errors.Wrapf(komand.ErrInvalidSpecification, "bool field %s requires a flags tag", f.Name)
			}
			opts = append(opts, komand.WithBoolean())
		case reflect.String, reflect.Int64:
			if len(tokens) == 0 {
				tokens = []string{fieldLabel(f)}
			}
		default:
			return nil, errors.Wrapf(komand.ErrInvalidSpecification, "field %s with kind %s not supported yet", f.Name, f.Type.Kind())
		}

		if err := p.AddArgument(tokens, opts...); err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Name)
		}
	}
	return p, nil
}

// Bind sets the exported fields of param from the parse result, falling
// back to the default tag for absent values.
func Bind(result *komand.Result, param any) error {
	v, err := structValue(param)
	if err != nil {
		return err
	}
	tp := v.Type()

	for i := 0; i < v.NumField(); i++ {
		f := tp.Field(i)
		if !f.IsExported() || f.Type.Kind() == reflect.Struct {
			continue
		}
		label := fieldLabel(f)
		switch f.Type.Kind() {
		case reflect.Bool:
			v.Field(i).SetBool(result.GetBool(label))
		case reflect.String:
			value, ok := result.GetString(label)
			if !ok {
				value = f.Tag.Get(tagDefault)
			}
			v.Field(i).SetString(value)
		case reflect.Int64:
			raw, ok := result.GetString(label)
			if !ok {
				raw = f.Tag.Get(tagDefault)
			}
			if raw == "" {
				continue
			}
			value, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "field %s", f.Name)
			}
			v.Field(i).SetInt(value)
		default:
			return errors.Newf("field %s with kind %s not supported yet", f.Name, f.Type.Kind())
		}
	}
	return nil
}

func structValue(param any) (reflect.Value, error) {
	v := reflect.ValueOf(param)
	if v.Kind() != reflect.Pointer {
		return reflect.Value{}, errors.New("param is not pointer")
	}
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New("param is not a struct")
	}
	return v, nil
}

func fieldLabel(f reflect.StructField) string {
	if name := f.Tag.Get(tagName); name != "" {
		return name
	}
	return strings.ToLower(f.Name)
}

func fieldFlags(f reflect.StructField) []string {
	raw := f.Tag.Get(tagFlags)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func fieldCompleter(f reflect.StructField) komand.Completer {
	if values := f.Tag.Get(tagValues); values != "" {
		return suggest.Static(strings.Split(values, ",")...)
	}
	if name := f.Tag.Get(tagCompleter); name != "" {
		return suggest.Named(name)
	}
	return nil
}
