// Package tagutil parses `json` struct tags.
package tagutil

import "strings"

// JSONTag represents a parsed `json` struct tag
type JSONTag struct {
	Name      string
	OmitEmpty bool
	AsString  bool
	Explicit  bool
	Transient bool
}

// ParseJSONTag parses raw, using defaultName when the tag names no field.
// A bare "-" marks the field transient; "-," names the field "-".
func ParseJSONTag(defaultName string, raw string) JSONTag {
	if raw == "" {
		return JSONTag{Name: defaultName}
	}
	if raw == "-" {
		return JSONTag{Name: defaultName, Transient: true, Explicit: true}
	}
	name, options, _ := strings.Cut(raw, ",")
	tag := JSONTag{Name: name, Explicit: name != ""}
	if name == "" {
		tag.Name = defaultName
	}
	for options != "" {
		var option string
		option, options, _ = strings.Cut(options, ",")
		switch option {
		case "omitempty":
			tag.OmitEmpty = true
		case "string":
			tag.AsString = true
		}
	}
	return tag
}
