package shard

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// ViewDescriptor is one parsed node of a descriptor. It is immutable once parsed.
type ViewDescriptor struct {
	Kind     string
	Props    []Prop
	Layout   StyleSchema
	Children []*ViewDescriptor
}

// Prop is one prop entry, kept in descriptor order.
type Prop struct {
	Key   string
	Value PropValue
}

// Count returns the number of descriptor nodes in the subtree.
func (d *ViewDescriptor) Count() int {
	count := 1
	for _, child := range d.Children {
		count += child.Count()
	}
	return count
}

// StyleSchema is the raw layout object of a descriptor node. Member values
// are kept as encoded JSON in their original order.
type StyleSchema struct {
	keys   []string
	values map[string][]byte
}

// ParseStyleSchema parses a layout object given as text.
func ParseStyleSchema(text string) (StyleSchema, error) {
	iter := jsoniter.ParseString(descriptorJSON, text)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return StyleSchema{}, fmt.Errorf("layout must be a JSON object")
	}
	schema := readSchema(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return StyleSchema{}, iter.Error
	}
	return schema, nil
}

func readSchema(iter *jsoniter.Iterator) StyleSchema {
	schema := StyleSchema{values: make(map[string][]byte)}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if _, seen := schema.values[key]; !seen {
			schema.keys = append(schema.keys, key)
		}
		schema.values[key] = it.SkipAndReturnBytes()
		return it.Error == nil
	})
	return schema
}

// Lookup returns the encoded value stored under key.
func (s StyleSchema) Lookup(key string) ([]byte, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the member names in their original order.
func (s StyleSchema) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of members.
func (s StyleSchema) Len() int {
	return len(s.keys)
}

var descriptorJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseDescriptor parses descriptor text of the form {"root": {...}}.
// Every node is checked for a string kind and an object layout before any
// view can be created. A top-level string "error" member is reported as a
// schema error carrying the message.
func ParseDescriptor(text string) (*ViewDescriptor, error) {
	data := []byte(text)
	iter := jsoniter.ParseBytes(descriptorJSON, data)
	top := iter.SkipAndReturnBytes()
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, schemaErrorf("", "malformed descriptor: %v", iter.Error)
	}
	if len(bytes.TrimSpace(top)) != len(bytes.TrimSpace(data)) {
		return nil, schemaErrorf("", "malformed descriptor: unexpected data after top-level value")
	}

	iter = jsoniter.ParseBytes(descriptorJSON, top)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, schemaErrorf("", "descriptor must be a JSON object")
	}

	var root []byte
	var hostErr *string
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch field {
		case "root":
			root = it.SkipAndReturnBytes()
		case "error":
			if it.WhatIsNext() == jsoniter.StringValue {
				msg := it.ReadString()
				hostErr = &msg
			} else {
				it.Skip()
			}
		default:
			it.Skip()
		}
		return it.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, schemaErrorf("", "malformed descriptor: %v", iter.Error)
	}
	if hostErr != nil {
		return nil, schemaErrorf("", "descriptor reported error: %s", *hostErr)
	}
	if root == nil {
		return nil, schemaErrorf("", "missing top-level \"root\"")
	}
	return decodeNode(root, "root")
}

// decodeNode parses one encoded descriptor node and its subtree.
func decodeNode(raw []byte, path string) (*ViewDescriptor, error) {
	iter := jsoniter.ParseBytes(descriptorJSON, raw)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, schemaErrorf(path, "descriptor node must be an object")
	}

	d := &ViewDescriptor{}
	var hasKind, hasLayout bool
	var err error
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch field {
		case "kind":
			if it.WhatIsNext() != jsoniter.StringValue {
				err = schemaErrorf(path, "\"kind\" must be a string")
				return false
			}
			d.Kind = it.ReadString()
			hasKind = true
		case "layout":
			if it.WhatIsNext() != jsoniter.ObjectValue {
				err = schemaErrorf(path, "\"layout\" must be an object")
				return false
			}
			d.Layout = readSchema(it)
			hasLayout = true
		case "props":
			d.Props, err = readProps(it, path)
		case "children":
			d.Children, err = readChildren(it, path)
		default:
			it.Skip()
		}
		return err == nil && it.Error == nil
	})
	if err != nil {
		return nil, err
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, schemaErrorf(path, "malformed descriptor: %v", iter.Error)
	}
	if !hasKind {
		return nil, schemaErrorf(path, "missing \"kind\"")
	}
	if !hasLayout {
		return nil, newError(SchemaError, d.Kind, path, fmt.Errorf("missing \"layout\""))
	}
	return d, nil
}

func readProps(it *jsoniter.Iterator, path string) ([]Prop, error) {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.Skip()
		return nil, nil
	case jsoniter.ObjectValue:
	default:
		return nil, schemaErrorf(path, "\"props\" must be an object")
	}

	var props []Prop
	var err error
	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		raw := it.SkipAndReturnBytes()
		if it.Error != nil {
			return false
		}
		var value PropValue
		if value, err = canonicalProp(raw); err != nil {
			err = schemaErrorf(path, "prop %q: %v", key, err)
			return false
		}
		props = append(props, Prop{Key: key, Value: value})
		return true
	})
	return props, err
}

func readChildren(it *jsoniter.Iterator, path string) ([]*ViewDescriptor, error) {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.Skip()
		return nil, nil
	case jsoniter.ArrayValue:
	default:
		return nil, schemaErrorf(path, "\"children\" must be an array")
	}

	var children []*ViewDescriptor
	var err error
	it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		raw := it.SkipAndReturnBytes()
		if it.Error != nil {
			return false
		}
		var child *ViewDescriptor
		child, err = decodeNode(raw, fmt.Sprintf("%s/children[%d]", path, len(children)))
		if err != nil {
			return false
		}
		children = append(children, child)
		return true
	})
	return children, err
}
