package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Encode turns a tagged struct into a Document using its JSON field names.
// Numbers come back as int64 when integral and float64 otherwise.
func Encode(v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return decodeJSON(raw)
}

// Decode fills v from doc.
func Decode(doc Document, v interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func decodeJSON(raw []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	doc := Document(normalize(m).(map[string]interface{}))
	for _, field := range []string{FieldCreatedAt, FieldUpdatedAt} {
		if s, ok := doc[field].(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				doc[field] = t
			}
		}
	}
	return doc, nil
}

func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case map[string]interface{}:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case []interface{}:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}

// Clone copies doc one level deep.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Merge returns d with every key of patch written over it.
func (d Document) Merge(patch Document) Document {
	out := d.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// SortedKeys returns the keys of d in lexical order.
func (d Document) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Compare orders two field values. Values of different kinds order
// null < bool < number < time < string; a missing field is treated as null.
func Compare(a, b interface{}) int {
	a, b = normalize(a), normalize(b)
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch x := a.(type) {
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case int64, float64:
		fa, fb := toFloat(a), toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case time.Time:
		return x.Compare(b.(time.Time))
	case string:
		if ta, tb, ok := bothTimes(x, b.(string)); ok {
			return ta.Compare(tb)
		}
		return strings.Compare(x, b.(string))
	}
	return 0
}

// Equal reports whether two field values are equal under Compare.
func Equal(a, b interface{}) bool {
	a, b = normalize(a), normalize(b)
	if rank(a) == 5 && rank(b) == 5 {
		return reflect.DeepEqual(a, b)
	}
	return Compare(a, b) == 0
}

func rank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int64, float64:
		return 2
	case time.Time:
		return 3
	case string:
		return 4
	default:
		return 5
	}
}

func toFloat(v interface{}) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

func bothTimes(a, b string) (time.Time, time.Time, bool) {
	ta, err := time.Parse(time.RFC3339Nano, a)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	tb, err := time.Parse(time.RFC3339Nano, b)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return ta, tb, true
}

// ApplyQuery filters and orders snapshots in process. The sort is stable, so
// ties keep their input order. Documents missing the order field sort last.
func ApplyQuery(snaps []Snapshot, q Query) []Snapshot {
	out := make([]Snapshot, 0, len(snaps))
	for _, s := range snaps {
		if q.Field != "" && !Equal(s.Data[q.Field], q.Value) {
			continue
		}
		out = append(out, s)
	}

	if q.OrderBy == "" {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := out[i].Data[q.OrderBy]
		b, bok := out[j].Data[q.OrderBy]
		if aok != bok {
			return aok
		}
		c := Compare(a, b)
		if q.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}
