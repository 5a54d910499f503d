package synth

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/intrinsics"
)

// location identifies where a registered resource lives.
type location struct {
	Stack   string
	Logical string
}

// resolver serializes resource structs to CloudFormation properties,
// converting embedded resource values to Ref, Fn::GetAtt or
// Fn::ImportValue depending on where the referenced resource lives
// relative to the stack being serialized.
type resolver struct {
	sigs    map[string]location
	current string

	// exports collects outputs that must be added to other stacks so
	// that cross-stack references can be imported.
	exports map[string]map[string]infra.Output

	// deps records exporter stacks per importer stack.
	deps map[string]map[string]bool
}

func newResolver() *resolver {
	return &resolver{
		sigs:    make(map[string]location),
		exports: make(map[string]map[string]infra.Output),
		deps:    make(map[string]map[string]bool),
	}
}

// signature produces a stable identity for a resource value. Two
// resources with the same type and identical field content collide,
// which Build reports as an error.
func signature(r infra.Resource) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("computing signature for %s: %w", r.ResourceType(), err)
	}
	return r.ResourceType() + ":" + string(data), nil
}

// register records a resource under its stack and logical name.
func (r *resolver) register(stack, logical string, res infra.Resource) error {
	sig, err := signature(res)
	if err != nil {
		return err
	}
	if prev, ok := r.sigs[sig]; ok {
		return fmt.Errorf("resources %s/%s and %s/%s have identical content; distinguish them (for example with a Name tag)",
			prev.Stack, prev.Logical, stack, logical)
	}
	r.sigs[sig] = location{Stack: stack, Logical: logical}
	return nil
}

// properties serializes a resource struct to CloudFormation properties.
// PascalCase field names come straight from the Go field names, with a
// json tag taking precedence. Zero values are omitted.
func (r *resolver) properties(v any) (map[string]any, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, nil
	}

	result := make(map[string]any)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "-" {
			continue
		}

		fieldVal := val.Field(i)
		if isZeroValue(fieldVal) {
			continue
		}

		serialized, err := r.serializeValue(fieldVal)
		if err != nil {
			return nil, err
		}
		if serialized != nil {
			result[name] = serialized
		}
	}

	return result, nil
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "" {
		return field.Name
	}
	return parts[0]
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.String:
		return v.String() == ""
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	default:
		return false
	}
}

// serializeValue converts a reflect.Value to a JSON-compatible value,
// resolving embedded resources and reference-carrying intrinsics.
func (r *resolver) serializeValue(v reflect.Value) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		return r.serializeValue(v.Elem())
	}

	if v.CanInterface() {
		// Intrinsics that can carry embedded resource values are
		// resolved field by field before plain marshaling.
		switch t := v.Interface().(type) {
		case intrinsics.Att:
			return r.resolveAtt(t)
		case intrinsics.Join:
			values := make([]any, len(t.Values))
			for i, elem := range t.Values {
				resolved, err := r.serializeValue(reflect.ValueOf(elem))
				if err != nil {
					return nil, err
				}
				values[i] = resolved
			}
			return map[string]any{"Fn::Join": []any{t.Delimiter, values}}, nil
		case intrinsics.Select:
			list, err := r.serializeValue(reflect.ValueOf(t.List))
			if err != nil {
				return nil, err
			}
			return map[string]any{"Fn::Select": []any{t.Index, list}}, nil
		case intrinsics.SubWithMap:
			vars := make(map[string]any, len(t.Variables))
			for key, elem := range t.Variables {
				resolved, err := r.serializeValue(reflect.ValueOf(elem))
				if err != nil {
					return nil, err
				}
				vars[key] = resolved
			}
			return map[string]any{"Fn::Sub": []any{t.String, vars}}, nil
		case intrinsics.Tag:
			value, err := r.serializeValue(reflect.ValueOf(t.Value))
			if err != nil {
				return nil, err
			}
			return map[string]any{"Key": t.Key, "Value": value}, nil
		}

		if res, ok := v.Interface().(infra.Resource); ok {
			return r.resolveRef(res)
		}

		if marshaler, ok := v.Interface().(json.Marshaler); ok {
			data, err := marshaler.MarshalJSON()
			if err != nil {
				return nil, err
			}
			var result any
			if err := json.Unmarshal(data, &result); err != nil {
				return nil, err
			}
			return result, nil
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		return r.properties(v.Interface())

	case reflect.Slice:
		if v.Len() == 0 {
			return nil, nil
		}
		result := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := r.serializeValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			result[i] = elem
		}
		return result, nil

	case reflect.Map:
		if v.Len() == 0 {
			return nil, nil
		}
		result := make(map[string]any)
		iter := v.MapRange()
		for iter.Next() {
			val, err := r.serializeValue(iter.Value())
			if err != nil {
				return nil, err
			}
			result[iter.Key().String()] = val
		}
		return result, nil

	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v.Interface(), nil

	default:
		data, err := json.Marshal(v.Interface())
		if err != nil {
			return nil, err
		}
		var result any
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}
		return result, nil
	}
}

// resolveRef resolves an embedded resource value to Ref within its own
// stack, or to Fn::ImportValue of an auto-added export when the
// resource lives in a different stack.
func (r *resolver) resolveRef(res infra.Resource) (any, error) {
	loc, err := r.lookup(res)
	if err != nil {
		return nil, err
	}

	if loc.Stack == r.current {
		return map[string]any{"Ref": loc.Logical}, nil
	}

	exportName := loc.Stack + "-" + loc.Logical
	r.addExport(loc.Stack, loc.Logical, infra.Output{
		Value:  map[string]any{"Ref": loc.Logical},
		Export: infra.Export(exportName),
	})
	r.addDep(r.current, loc.Stack)
	return map[string]any{"Fn::ImportValue": exportName}, nil
}

// resolveAtt resolves an attribute reference to Fn::GetAtt or, across
// stacks, to Fn::ImportValue of an auto-added attribute export.
func (r *resolver) resolveAtt(att intrinsics.Att) (any, error) {
	res, ok := att.Resource.(infra.Resource)
	if !ok {
		return nil, fmt.Errorf("Att references a value of type %T, which is not a resource", att.Resource)
	}
	loc, err := r.lookup(res)
	if err != nil {
		return nil, err
	}

	if loc.Stack == r.current {
		return map[string]any{"Fn::GetAtt": []any{loc.Logical, att.Attribute}}, nil
	}

	outputName := loc.Logical + strings.ReplaceAll(att.Attribute, ".", "")
	exportName := loc.Stack + "-" + outputName
	r.addExport(loc.Stack, outputName, infra.Output{
		Value:  map[string]any{"Fn::GetAtt": []any{loc.Logical, att.Attribute}},
		Export: infra.Export(exportName),
	})
	r.addDep(r.current, loc.Stack)
	return map[string]any{"Fn::ImportValue": exportName}, nil
}

func (r *resolver) lookup(res infra.Resource) (location, error) {
	sig, err := signature(res)
	if err != nil {
		return location{}, err
	}
	loc, ok := r.sigs[sig]
	if !ok {
		return location{}, fmt.Errorf("referenced %s value is not registered in any stack", res.ResourceType())
	}
	return loc, nil
}

func (r *resolver) addExport(stack, name string, out infra.Output) {
	if r.exports[stack] == nil {
		r.exports[stack] = make(map[string]infra.Output)
	}
	r.exports[stack][name] = out
}

func (r *resolver) addDep(importer, exporter string) {
	if importer == exporter {
		return
	}
	if r.deps[importer] == nil {
		r.deps[importer] = make(map[string]bool)
	}
	r.deps[importer][exporter] = true
}

// serializeOutputValue resolves an output value the same way resource
// properties are resolved.
func (r *resolver) serializeOutputValue(v any) (any, error) {
	return r.serializeValue(reflect.ValueOf(v))
}

// mergeTags appends stack-level tags to a resource's serialized Tags
// list. Resource tags win on key conflicts. Resources without a
// []any Tags field, such as SSM parameters with map tags, are left
// alone.
func mergeTags(resource any, props map[string]any, stackTags []infra.StackTag) {
	if len(stackTags) == 0 {
		return
	}

	typ := reflect.TypeOf(resource)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}
	field, ok := typ.FieldByName("Tags")
	if !ok || field.Type != reflect.TypeOf([]any(nil)) {
		return
	}

	existing, _ := props["Tags"].([]any)
	seen := make(map[string]bool)
	for _, tag := range existing {
		if m, ok := tag.(map[string]any); ok {
			if key, ok := m["Key"].(string); ok {
				seen[key] = true
			}
		}
	}

	sorted := make([]infra.StackTag, len(stackTags))
	copy(sorted, stackTags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	for _, tag := range sorted {
		if seen[tag.Key] {
			continue
		}
		existing = append(existing, map[string]any{"Key": tag.Key, "Value": tag.Value})
	}
	props["Tags"] = existing
}
