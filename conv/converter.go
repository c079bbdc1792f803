package conv

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/google/uuid"
	ftime "github.com/viant/tagly/format/time"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// IsProtected returns true if value is passed through unchanged:
// nil, booleans, numbers, time values and fixed-point decimals.
func IsProtected(value interface{}) bool {
	switch value.(type) {
	case nil, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		time.Time, *time.Time, time.Duration,
		*decimal.Big, decimal.Big:
		return true
	}
	rType := reflect.TypeOf(value)
	switch rType.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		//named enums with own text representation are rendered as text
		return !rType.Implements(stringerType) && !rType.Implements(textMarshalerType)
	}
	return false
}

// HasText returns true if type defines its own text representation
func HasText(rType reflect.Type) bool {
	if rType.Implements(stringerType) || rType.Implements(textMarshalerType) {
		return true
	}
	return reflect.PointerTo(rType).Implements(stringerType)
}

// Text converts any value to its best-effort text representation, text input is returned as is
func Text(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	case []byte:
		return string(actual)
	case primitive.ObjectID:
		return actual.Hex()
	case uuid.UUID:
		return actual.String()
	case error:
		return actual.Error()
	case fmt.Stringer:
		return actual.String()
	case encoding.TextMarshaler:
		if text, err := actual.MarshalText(); err == nil {
			return string(text)
		}
	}

	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return rValue.String()
	case reflect.Bool:
		return strconv.FormatBool(rValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rValue.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 64)
	case reflect.Slice:
		if rValue.Type().Elem().Kind() == reflect.Uint8 {
			return string(rValue.Bytes())
		}
	case reflect.Ptr:
		if rValue.IsNil() {
			return ""
		}
	}
	return fmt.Sprintf("%v", value)
}

// TimeLayout returns go time layout for supplied ISO date format (i.e. YYYY-MM-DD hh:mm:ss),
// values already expressed as go layout are returned unchanged
func TimeLayout(dateFormat string) string {
	if dateFormat == "" {
		return ""
	}
	if containsDigit(dateFormat) {
		return dateFormat
	}
	return ftime.DateFormatToTimeLayout(dateFormat)
}

func containsDigit(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			return true
		}
	}
	return false
}
