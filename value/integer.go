package value

import (
	"cmp"
	"strconv"
)

// region Int8 /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Int8 is a wrapper for int8 values that makes these values compatible with the Value constraint.
type Int8 int8

// ParseInt8 parses an Int8 from its decimal representation.
func ParseInt8(text string) (Int8, error) {
	parsed, err := strconv.ParseInt(text, 10, 8)
	if err != nil {
		return 0, wrapParseError(err, "Int8", text)
	}

	return Int8(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int8) Compare(other Int8) int {
	return cmp.Compare(i, other)
}

// String returns the decimal representation of the Int8.
func (i Int8) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Int8] = Int8(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int16 ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Int16 is a wrapper for int16 values that makes these values compatible with the Value constraint.
type Int16 int16

// ParseInt16 parses an Int16 from its decimal representation.
func ParseInt16(text string) (Int16, error) {
	parsed, err := strconv.ParseInt(text, 10, 16)
	if err != nil {
		return 0, wrapParseError(err, "Int16", text)
	}

	return Int16(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int16) Compare(other Int16) int {
	return cmp.Compare(i, other)
}

// String returns the decimal representation of the Int16.
func (i Int16) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Int16] = Int16(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int32 ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Int32 is a wrapper for int32 values that makes these values compatible with the Value constraint.
type Int32 int32

// ParseInt32 parses an Int32 from its decimal representation.
func ParseInt32(text string) (Int32, error) {
	parsed, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, wrapParseError(err, "Int32", text)
	}

	return Int32(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int32) Compare(other Int32) int {
	return cmp.Compare(i, other)
}

// String returns the decimal representation of the Int32.
func (i Int32) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Int32] = Int32(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int64 ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Int64 is a wrapper for int64 values that makes these values compatible with the Value constraint.
type Int64 int64

// ParseInt64 parses an Int64 from its decimal representation.
func ParseInt64(text string) (Int64, error) {
	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, wrapParseError(err, "Int64", text)
	}

	return Int64(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int64) Compare(other Int64) int {
	return cmp.Compare(i, other)
}

// String returns the decimal representation of the Int64.
func (i Int64) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Int64] = Int64(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint8 ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Uint8 is a wrapper for uint8 values that makes these values compatible with the Value constraint.
type Uint8 uint8

// ParseUint8 parses an Uint8 from its decimal representation.
func ParseUint8(text string) (Uint8, error) {
	parsed, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return 0, wrapParseError(err, "Uint8", text)
	}

	return Uint8(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (u Uint8) Compare(other Uint8) int {
	return cmp.Compare(u, other)
}

// String returns the decimal representation of the Uint8.
func (u Uint8) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Uint8] = Uint8(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint16 ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Uint16 is a wrapper for uint16 values that makes these values compatible with the Value constraint.
type Uint16 uint16

// ParseUint16 parses an Uint16 from its decimal representation.
func ParseUint16(text string) (Uint16, error) {
	parsed, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, wrapParseError(err, "Uint16", text)
	}

	return Uint16(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (u Uint16) Compare(other Uint16) int {
	return cmp.Compare(u, other)
}

// String returns the decimal representation of the Uint16.
func (u Uint16) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Uint16] = Uint16(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint32 ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Uint32 is a wrapper for uint32 values that makes these values compatible with the Value constraint.
type Uint32 uint32

// ParseUint32 parses an Uint32 from its decimal representation.
func ParseUint32(text string) (Uint32, error) {
	parsed, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, wrapParseError(err, "Uint32", text)
	}

	return Uint32(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (u Uint32) Compare(other Uint32) int {
	return cmp.Compare(u, other)
}

// String returns the decimal representation of the Uint32.
func (u Uint32) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Uint32] = Uint32(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint64 ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Uint64 is a wrapper for uint64 values that makes these values compatible with the Value constraint.
type Uint64 uint64

// ParseUint64 parses an Uint64 from its decimal representation.
func ParseUint64(text string) (Uint64, error) {
	parsed, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, wrapParseError(err, "Uint64", text)
	}

	return Uint64(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (u Uint64) Compare(other Uint64) int {
	return cmp.Compare(u, other)
}

// String returns the decimal representation of the Uint64.
func (u Uint64) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Uint64] = Uint64(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
