package style

import "strings"

// ParseDeclarations converts a style text of the form
//
//     "padding: 0; color: green;"
//
// into a property map. This is intentionally not a CSS parser: the text is
// split into fragments at ';', each fragment is split at ':' and the parts
// are trimmed. Fragments without a property name or without a value are
// dropped without notice. There is no syntax error for style text.
//
// Only the text between the first and a possible second colon is taken as
// the value, i.e. "background: url(data:x)" yields "url(data".
func ParseDeclarations(text string) *PropertyMap {
	pmap := NewPropertyMap()
	for _, fragment := range strings.Split(text, ";") {
		pair := strings.Split(fragment, ":")
		if len(pair) < 2 {
			if strings.TrimSpace(fragment) != "" {
				tracer().Debugf("style: dropping fragment without value: %q", fragment)
			}
			continue
		}
		key := strings.TrimSpace(pair[0])
		value := strings.TrimSpace(pair[1])
		if key == "" || value == "" {
			tracer().Debugf("style: dropping incomplete declaration: %q", fragment)
			continue
		}
		pmap.Set(key, Property(value))
	}
	return pmap
}
