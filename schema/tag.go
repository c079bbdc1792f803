package schema

import (
	"reflect"
	"strings"

	"github.com/viant/tagly/format"
)

const formatTag = "format"

type fieldTag struct {
	name     string
	explicit bool
	ignore   bool
}

// resolveTag resolves field name precedence:
// 1) json explicit name or transient wins over format name/case.
// 2) format name (with optional case format) applies otherwise.
// 3) ignore is enabled by json:"-", internal:"true" or format ignore.
func resolveTag(sf reflect.StructField) fieldTag {
	ret := fieldTag{name: sf.Name}
	if jsonTag, ok := sf.Tag.Lookup("json"); ok {
		name := jsonTag
		if index := strings.Index(jsonTag, ","); index != -1 {
			name = jsonTag[:index]
		}
		switch name {
		case "-":
			ret.ignore = true
			return ret
		case "":
		default:
			ret.name = name
			ret.explicit = true
		}
	}
	if sf.Tag.Get("internal") == "true" {
		ret.ignore = true
		return ret
	}
	if _, ok := sf.Tag.Lookup(formatTag); !ok {
		return ret
	}
	tag, err := format.Parse(sf.Tag)
	if err != nil || tag == nil {
		return ret
	}
	if tag.Ignore {
		ret.ignore = true
		return ret
	}
	if ret.explicit {
		return ret
	}
	hasCase := tag.CaseFormat != "" && tag.CaseFormat != "-"
	if tag.Name != "" || hasCase {
		if tag.Name == "" {
			tag.Name = sf.Name
		}
		if name := tag.CaseFormatName(""); name != "" {
			ret.name = name
			ret.explicit = true
		}
	}
	return ret
}
