package track

import "fmt"

// roadFlag marks road object ids inside a Type.
const roadFlag = 0x80

// Type identifies the object being built: the object id in the low seven bits,
// with the high bit set for road objects.
type Type uint8

// RailType builds a Type for a rail object id.
func RailType(id uint8) Type {
	return Type(id &^ roadFlag)
}

// RoadType builds a Type for a road object id.
func RoadType(id uint8) Type {
	return Type(id | roadFlag)
}

// IsRoad reports whether the type refers to a road object.
func (t Type) IsRoad() bool {
	return t&roadFlag != 0
}

// ObjectID returns the object id without the road flag.
func (t Type) ObjectID() uint8 {
	return uint8(t) &^ roadFlag
}

// String renders the type as "rail:<id>" or "road:<id>".
func (t Type) String() string {
	if t.IsRoad() {
		return fmt.Sprintf("road:%d", t.ObjectID())
	}

	return fmt.Sprintf("rail:%d", t.ObjectID())
}
