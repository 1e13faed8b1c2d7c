package doiorg

import "strconv"

// Metadata is one decoded citation-style JSON record. All access goes
// through tolerant key-path walks: a missing key, an index out of
// bounds, or a type mismatch silently omits the value, never errors.
type Metadata map[string]any

// StringAt walks the key path (string segments index maps, int segments
// index arrays) and returns the string at its end.
func (m Metadata) StringAt(path ...any) (string, bool) {
	v, ok := m.walk(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// NumberAt is StringAt for numeric leaves. JSON numbers decode as float64.
func (m Metadata) NumberAt(path ...any) (float64, bool) {
	v, ok := m.walk(path)
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

func (m Metadata) walk(path []any) (any, bool) {
	if m == nil {
		return nil, false
	}
	var cur any = map[string]any(m)
	for _, seg := range path {
		switch key := seg.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = obj[key]
			if !ok {
				return nil, false
			}
		case int:
			arr, ok := cur.([]any)
			if !ok || key < 0 || key >= len(arr) {
				return nil, false
			}
			cur = arr[key]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Title returns the record's title.
func (m Metadata) Title() (string, bool) {
	return m.StringAt("title")
}

// FirstAuthor returns the first author's given and family names. The
// family name is required; the given name may be empty.
func (m Metadata) FirstAuthor() (given, family string, ok bool) {
	family, ok = m.StringAt("author", 0, "family")
	if !ok {
		return "", "", false
	}
	given, _ = m.StringAt("author", 0, "given")
	return given, family, true
}

// Fields extracts the optional reference fields the output vocabulary
// recognizes: publisher, year, number, volume, pages, ISSN.
func (m Metadata) Fields() map[string]string {
	fields := make(map[string]string)

	if v, ok := m.StringAt("publisher"); ok && v != "" {
		fields["publisher"] = v
	}
	if n, ok := m.NumberAt("issued", "date-parts", 0, 0); ok {
		fields["year"] = strconv.Itoa(int(n))
	}
	if v, ok := m.StringAt("issue"); ok && v != "" {
		fields["number"] = v
	}
	if v, ok := m.StringAt("volume"); ok && v != "" {
		fields["volume"] = v
	}
	if v, ok := m.StringAt("page"); ok && v != "" {
		fields["pages"] = v
	}
	// ISSN arrives either as a plain string or as an array of strings.
	if v, ok := m.StringAt("ISSN"); ok && v != "" {
		fields["ISSN"] = v
	} else if v, ok := m.StringAt("ISSN", 0); ok && v != "" {
		fields["ISSN"] = v
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
