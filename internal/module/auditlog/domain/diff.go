package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Diff computes a recursive field-level diff between two arbitrary
// JSON-serializable states, skipping any key beginning with "_" (internal
// bookkeeping fields that never belong in an audit trail). Both values are
// round-tripped through JSON so structs, maps, and datatypes.JSON blobs
// compare uniformly.
func Diff(previous, next interface{}) ([]FieldChange, error) {
	prevMap, err := toMap(previous)
	if err != nil {
		return nil, fmt.Errorf("auditlog: diff previous: %w", err)
	}
	nextMap, err := toMap(next)
	if err != nil {
		return nil, fmt.Errorf("auditlog: diff next: %w", err)
	}

	var changes []FieldChange
	diffMaps("", prevMap, nextMap, &changes)

	sort.Slice(changes, func(i, j int) bool { return changes[i].Field < changes[j].Field })
	return changes, nil
}

func toMap(v interface{}) (map[string]interface{}, error) {
	if v == nil {
		return map[string]interface{}{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func diffMaps(prefix string, prev, next map[string]interface{}, changes *[]FieldChange) {
	seen := make(map[string]bool, len(prev)+len(next))
	for k := range prev {
		seen[k] = true
	}
	for k := range next {
		seen[k] = true
	}

	for key := range seen {
		if strings.HasPrefix(key, "_") {
			continue
		}
		field := key
		if prefix != "" {
			field = prefix + "." + key
		}

		prevVal, hadPrev := prev[key]
		nextVal, hadNext := next[key]

		prevSub, prevIsMap := prevVal.(map[string]interface{})
		nextSub, nextIsMap := nextVal.(map[string]interface{})
		if prevIsMap && nextIsMap {
			diffMaps(field, prevSub, nextSub, changes)
			continue
		}

		if !hadPrev && hadNext {
			*changes = append(*changes, FieldChange{Field: field, OldValue: nil, NewValue: nextVal})
			continue
		}
		if hadPrev && !hadNext {
			*changes = append(*changes, FieldChange{Field: field, OldValue: prevVal, NewValue: nil})
			continue
		}
		if !valuesEqual(prevVal, nextVal) {
			*changes = append(*changes, FieldChange{Field: field, OldValue: prevVal, NewValue: nextVal})
		}
	}
}

func valuesEqual(a, b interface{}) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(aj) == string(bj)
}
