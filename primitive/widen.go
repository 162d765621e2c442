package primitive

type ConversionPair struct {
	From, To KindEnum
}

var wideningPairs map[ConversionPair]struct{}

func init() {
	wideningPairs = safeWideningPairs()
}

// Widens reports whether a value of kind from can be carried by kind to
// without any possibility of information loss. Only same-category widenings
// qualify: signed to wider signed, unsigned to wider unsigned, float32 to
// float64. Crossing signedness, crossing integer/float, and any narrowing are
// not widenings.
func Widens(from, to KindEnum) bool {
	_, ok := wideningPairs[ConversionPair{from, to}]
	return ok
}

func safeWideningPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindBool, KindBool}: {}, // bool converts to nothing but bool

		{KindInt, KindInt}:   {}, // int can be any wide from 32 upto 64
		{KindInt, KindInt64}: {},

		{KindInt8, KindInt}:   {}, // int8 can be safely converted to any signed int
		{KindInt8, KindInt8}:  {},
		{KindInt8, KindInt16}: {},
		{KindInt8, KindInt32}: {},
		{KindInt8, KindInt64}: {},

		{KindInt16, KindInt}:   {},
		{KindInt16, KindInt16}: {}, // int16 omitting narrowing to int8
		{KindInt16, KindInt32}: {},
		{KindInt16, KindInt64}: {},

		{KindInt32, KindInt}:   {},
		{KindInt32, KindInt32}: {}, // int32 omitting narrowing to int8/16
		{KindInt32, KindInt64}: {},

		{KindInt64, KindInt64}: {}, // int64 is the widest signed integer type

		{KindUint, KindUint}:   {}, // uint can be any wide from 32 upto 64
		{KindUint, KindUint64}: {},

		{KindUint8, KindUint}:   {}, // uint8 can be safely converted to any unsigned int
		{KindUint8, KindUint8}:  {},
		{KindUint8, KindUint16}: {},
		{KindUint8, KindUint32}: {},
		{KindUint8, KindUint64}: {},

		{KindUint16, KindUint}:   {},
		{KindUint16, KindUint16}: {}, // uint16 omitting narrowing to uint8
		{KindUint16, KindUint32}: {},
		{KindUint16, KindUint64}: {},

		{KindUint32, KindUint}:   {},
		{KindUint32, KindUint32}: {}, // uint32 omitting narrowing to uint8/16
		{KindUint32, KindUint64}: {},

		{KindUint64, KindUint64}: {}, // uint64 is the widest unsigned integer type

		{KindFloat32, KindFloat32}: {},
		{KindFloat32, KindFloat64}: {},

		{KindFloat64, KindFloat64}: {},

		{KindString, KindString}: {},
	}
}
