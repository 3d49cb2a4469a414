package base

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Render writes v to the UI in the format selected with -format.
func (c *Command) Render(v any) error {
	var buf bytes.Buffer
	if err := Render(&buf, c.Format(), v); err != nil {
		return err
	}
	c.UI.Output(strings.TrimRight(buf.String(), "\n"))
	return nil
}

// RenderPage writes a models.Page to the UI. Tables show the page content
// followed by a position line; json and yaml show the whole envelope.
func (c *Command) RenderPage(page any) error {
	var buf bytes.Buffer
	if err := RenderPage(&buf, c.Format(), page); err != nil {
		return err
	}
	c.UI.Output(strings.TrimRight(buf.String(), "\n"))
	return nil
}

// Render writes v to w as a table, json or yaml.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		b, err := yaml.Marshal(normalizeRaw(v))
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case FormatTable, "":
		return writeTable(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderPage writes a models.Page value to w.
func RenderPage(w io.Writer, format string, page any) error {
	if format != FormatTable && format != "" {
		return Render(w, format, page)
	}

	pv := reflect.Indirect(reflect.ValueOf(page))
	content := pv.FieldByName("Content")
	if !content.IsValid() {
		return writeTable(w, page)
	}
	if err := writeTable(w, content.Interface()); err != nil {
		return err
	}

	number := pv.FieldByName("Number").Int()
	pages := pv.FieldByName("TotalPages").Int()
	total := pv.FieldByName("TotalElements").Int()
	if pages > 0 {
		_, err := fmt.Fprintf(w, "\npage %d of %d, %d total\n", number+1, pages, total)
		return err
	}
	return nil
}

func writeTable(w io.Writer, v any) error {
	v = normalizeRaw(v)
	rv := reflect.Indirect(reflect.ValueOf(v))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch {
	case !rv.IsValid():
		fmt.Fprintln(tw, "-")

	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8:
		if rv.Len() == 0 {
			fmt.Fprintln(tw, "no results")
			break
		}
		cols := columns(rv)
		headers := make([]string, len(cols))
		for i, col := range cols {
			headers[i] = header(col)
		}
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
		for i := 0; i < rv.Len(); i++ {
			row := make([]string, len(cols))
			for j, col := range cols {
				row[j] = lookup(rv.Index(i), col)
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}

	case rv.Kind() == reflect.Struct || rv.Kind() == reflect.Map:
		for _, col := range fieldNames(rv) {
			fmt.Fprintf(tw, "%s\t%s\n", header(col), lookup(rv, col))
		}

	default:
		fmt.Fprintln(tw, cell(rv))
	}
	return tw.Flush()
}

// normalizeRaw decodes raw JSON so it renders as data rather than bytes.
func normalizeRaw(v any) any {
	switch t := v.(type) {
	case json.RawMessage:
		var out any
		if err := json.Unmarshal(t, &out); err == nil {
			return out
		}
	case []json.RawMessage:
		out := make([]any, 0, len(t))
		for _, raw := range t {
			var item any
			if err := json.Unmarshal(raw, &item); err != nil {
				item = string(raw)
			}
			out = append(out, item)
		}
		return out
	}
	return v
}

func header(name string) string {
	return strings.ReplaceAll(strcase.ToScreamingSnake(name), "_", " ")
}

// columns returns the column names for a slice of structs or maps.
func columns(rows reflect.Value) []string {
	seen := map[string]bool{}
	var cols []string
	for i := 0; i < rows.Len(); i++ {
		for _, name := range fieldNames(rows.Index(i)) {
			if !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		}
		if rows.Index(i).Kind() != reflect.Map && rows.Index(i).Kind() != reflect.Interface {
			break
		}
	}
	return cols
}

// fieldNames lists the displayable fields of a struct, flattening embedded
// structs, or the sorted keys of a map.
func fieldNames(v reflect.Value) []string {
	v = deref(v)
	switch v.Kind() {
	case reflect.Map:
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, fmt.Sprint(k.Interface()))
		}
		sort.Strings(keys)
		return keys

	case reflect.Struct:
		var names []string
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Name == "Password" {
				continue
			}
			if f.Anonymous && deref(v.Field(i)).Kind() == reflect.Struct && !isStringer(v.Field(i)) {
				names = append(names, fieldNames(v.Field(i))...)
				continue
			}
			if displayable(v.Field(i)) {
				names = append(names, f.Name)
			}
		}
		return names
	}
	return nil
}

func lookup(v reflect.Value, name string) string {
	v = deref(v)
	switch v.Kind() {
	case reflect.Map:
		for _, k := range v.MapKeys() {
			if fmt.Sprint(k.Interface()) == name {
				return cell(v.MapIndex(k))
			}
		}
		return ""
	case reflect.Struct:
		f := v.FieldByName(name)
		if !f.IsValid() {
			return ""
		}
		return cell(f)
	}
	return ""
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isStringer(v reflect.Value) bool {
	_, ok := v.Interface().(fmt.Stringer)
	return ok
}

// displayable reports whether a field fits in one table cell.
func displayable(v reflect.Value) bool {
	if isStringer(v) {
		return true
	}
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Interface:
		return true
	case reflect.Struct:
		_, hasName := t.FieldByName("Name")
		_, hasUsername := t.FieldByName("Username")
		return hasName || hasUsername
	}
	return false
}

func cell(v reflect.Value) string {
	if v.IsValid() && v.Kind() != reflect.Interface && v.CanInterface() {
		if (v.Kind() != reflect.Pointer || !v.IsNil()) && isStringer(v) {
			return v.Interface().(fmt.Stringer).String()
		}
	}

	v = deref(v)
	if !v.IsValid() {
		return "-"
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.Struct:
		if u := v.FieldByName("Username"); u.IsValid() && u.String() != "" {
			return u.String()
		}
		if n := v.FieldByName("Name"); n.IsValid() {
			return fmt.Sprint(n.Interface())
		}
		return "-"
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%g", v.Float())
	case reflect.Slice, reflect.Map:
		return fmt.Sprintf("[%d]", v.Len())
	}
	return fmt.Sprint(v.Interface())
}
