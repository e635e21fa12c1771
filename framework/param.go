// Package framework derives komand parsers from tagged parameter
// structs, so commands declare their arguments once as plain Go types
// and get matching plus completion for free.
package framework

import "reflect"

// ParamBase marks a struct as a command parameter definition. The use
// string and description are declared as tags on the embedded field:
//
//	type BackupParam struct {
//		framework.ParamBase `use:"backup [file]" desc:"backup the workspace"`
//		Target  string      `name:"target" desc:"backup target path"`
//		Verbose bool        `name:"verbose" flags:"-v,--verbose" desc:"print progress"`
//	}
type ParamBase struct{}

// Use extracts the use string and description from the ParamBase field
// tag of param. Both come back empty when param embeds no ParamBase.
func Use(param any) (string, string) {
	v := reflect.ValueOf(param)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", ""
	}

	f, ok := v.Type().FieldByName("ParamBase")
	if !ok || f.Type.Kind() != reflect.Struct {
		return "", ""
	}
	return f.Tag.Get("use"), f.Tag.Get("desc")
}
