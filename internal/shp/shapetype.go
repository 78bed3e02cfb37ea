package shp

// ShapeType is the on-disk shape type code.
type ShapeType int32

const (
	ShapeTypeNull        ShapeType = 0
	ShapeTypePoint       ShapeType = 1
	ShapeTypePolyLine    ShapeType = 3
	ShapeTypePolygon     ShapeType = 5
	ShapeTypeMultiPoint  ShapeType = 8
	ShapeTypePointZ      ShapeType = 11
	ShapeTypePolyLineZ   ShapeType = 13
	ShapeTypePolygonZ    ShapeType = 15
	ShapeTypeMultiPointZ ShapeType = 18
	ShapeTypePointM      ShapeType = 21
	ShapeTypePolyLineM   ShapeType = 23
	ShapeTypePolygonM    ShapeType = 25
	ShapeTypeMultiPointM ShapeType = 28
	ShapeTypeMultiPatch  ShapeType = 31
)

// supported reports whether this module decodes the geometry of t as
// anything other than Null. Z, M, MultiPoint, and MultiPatch variants are
// out of scope and always decode to null geometry.
func (t ShapeType) supported() bool {
	switch t {
	case ShapeTypePoint, ShapeTypePolyLine, ShapeTypePolygon:
		return true
	default:
		return false
	}
}
