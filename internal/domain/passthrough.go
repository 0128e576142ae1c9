package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// Extra holds JSON object members this version of the model does not know.
// They are kept verbatim (compacted) and written back on the next save so a
// document produced by a newer build survives a round-trip through this one.
type Extra map[string]json.RawMessage

// jsonFieldNames returns the lower-cased JSON member names declared on a
// struct type. encoding/json matches member names case-insensitively, so the
// lookup must too.
func jsonFieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names[strings.ToLower(name)] = struct{}{}
	}
	return names
}

// unknownMembers collects the members of the JSON object in data whose names
// are not in known. It returns nil when there are none.
func unknownMembers(data []byte, known map[string]struct{}) (Extra, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	var extra Extra
	for name, raw := range members {
		if _, ok := known[strings.ToLower(name)]; ok {
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, err
		}
		if extra == nil {
			extra = make(Extra)
		}
		extra[name] = json.RawMessage(buf.Bytes())
	}
	return extra, nil
}

// marshalWithExtra encodes v and merges extra members into the resulting
// object. Known members always win over extra ones with the same name.
func marshalWithExtra(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for name, raw := range extra {
		if _, ok := members[name]; !ok {
			members[name] = raw
		}
	}
	return json.Marshal(members)
}
