package shard

import jsoniter "github.com/json-iterator/go"

// ExtractKind returns the top-level "kind" member of descriptor text. It
// stops reading as soon as the member is found and never builds a tree.
// A missing or non-string kind, or malformed text, reports false.
func ExtractKind(text string) (string, bool) {
	iter := jsoniter.ParseString(descriptorJSON, text)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return "", false
	}

	var kind string
	var found bool
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		if field == "kind" && it.WhatIsNext() == jsoniter.StringValue {
			kind = it.ReadString()
			found = it.Error == nil
			return false
		}
		it.Skip()
		return it.Error == nil
	})
	return kind, found
}

// GetKind delivers the result of ExtractKind to fn exactly once before returning.
func GetKind(text string, fn func(kind string, ok bool)) {
	fn(ExtractKind(text))
}
