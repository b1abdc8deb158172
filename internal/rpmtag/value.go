package rpmtag

import "fmt"

// ErrTypeMismatch is returned by TagStore.Set when a Value's Type is not one
// of the ten known wire types. Set does not check a Value's typed fields
// against its Type, and does not check a tag's value against any per-tag
// type: re-setting a tag with a value of another Type replaces it.
var ErrTypeMismatch = fmt.Errorf("rpmtag: type mismatch")

// Value is a tagged union over the ten wire types. Exactly one of the typed
// fields is meaningful, selected by Type; the constructors below are the
// only supported way to build one, so callers never set the wrong field for
// a given Type.
type Value struct {
	Type     Type
	Binary   []byte
	String   string
	Strings  []string // StringArray and I18NString
	Int8s    []int8
	Int16s   []int16
	Int32s   []int32
	Int64s   []int64
}

// Count is the wire "count" field for this value: 1 for scalars, the
// element count for arrays.
func (v Value) Count() int {
	switch v.Type {
	case TypeNull:
		return 1
	case TypeChar, TypeBinary:
		return len(v.Binary)
	case TypeString:
		return 1
	case TypeStringArray, TypeI18NString:
		return len(v.Strings)
	case TypeInt8:
		return len(v.Int8s)
	case TypeInt16:
		return len(v.Int16s)
	case TypeInt32:
		return len(v.Int32s)
	case TypeInt64:
		return len(v.Int64s)
	default:
		return 0
	}
}

func NullValue() Value { return Value{Type: TypeNull} }

func BinaryValue(b []byte) Value { return Value{Type: TypeBinary, Binary: b} }

func CharValue(b []byte) Value { return Value{Type: TypeChar, Binary: b} }

func StringValue(s string) Value { return Value{Type: TypeString, String: s} }

func StringArrayValue(ss []string) Value { return Value{Type: TypeStringArray, Strings: ss} }

func I18NStringValue(ss []string) Value { return Value{Type: TypeI18NString, Strings: ss} }

func Int8Value(v []int8) Value { return Value{Type: TypeInt8, Int8s: v} }

func Int16Value(v []int16) Value { return Value{Type: TypeInt16, Int16s: v} }

func Int32Value(v []int32) Value { return Value{Type: TypeInt32, Int32s: v} }

func Int64Value(v []int64) Value { return Value{Type: TypeInt64, Int64s: v} }
