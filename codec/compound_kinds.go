package codec

import "fmt"

// ArrayKind codes a homogeneous list by mapping the item kind over each
// element.
type ArrayKind struct {
	Item Kind
}

func (k ArrayKind) Encode(val interface{}, path string) (interface{}, error) {
	items, ok := val.([]interface{})
	if !ok {
		return nil, typeErr(path, "[]interface{}", val)
	}
	packed := make([]interface{}, 0, len(items))
	for i, item := range items {
		enc, err := k.Item.Encode(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		packed = append(packed, enc)
	}
	return packed, nil
}

func (k ArrayKind) Decode(node interface{}, path string) (interface{}, error) {
	list, ok := node.([]interface{})
	if !ok {
		return nil, structureErr(path, "expected list, got byte string")
	}
	out := make([]interface{}, 0, len(list))
	for i, child := range list {
		dec, err := k.Item.Decode(child, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, dec)
	}
	return out, nil
}

// StructKind codes a fixed-order, fixed-arity record. Fields are zipped
// positionally against the value map on encode and against the decoded
// list on decode; the declared order is the wire layout.
type StructKind []Profile

func (k StructKind) Encode(val interface{}, path string) (interface{}, error) {
	fields, ok := val.(map[string]interface{})
	if !ok {
		return nil, typeErr(path, "map[string]interface{}", val)
	}
	packed := make([]interface{}, 0, len(k))
	for _, p := range k {
		fieldVal, present := fields[p.Name]
		if !present {
			return nil, structureErr(path, "missing field %q", p.Name)
		}
		enc, err := p.Kind.Encode(fieldVal, path+"."+p.Name)
		if err != nil {
			return nil, err
		}
		packed = append(packed, enc)
	}
	return packed, nil
}

func (k StructKind) Decode(node interface{}, path string) (interface{}, error) {
	list, ok := node.([]interface{})
	if !ok {
		return nil, structureErr(path, "expected list, got byte string")
	}
	if len(list) != len(k) {
		return nil, structureErr(path, "expected %d fields, got %d", len(k), len(list))
	}
	out := make(map[string]interface{}, len(k))
	for i, p := range k {
		dec, err := p.Kind.Decode(list[i], path+"."+p.Name)
		if err != nil {
			return nil, err
		}
		out[p.Name] = dec
	}
	return out, nil
}
