package vectortile

import (
	"fmt"
)

// ErrUnknownGeometry indicates a feature whose geometry type is
// Unknown and therefore has no GeoJSON representation
type ErrUnknownGeometry struct {
	Type GeomType
}

func (e *ErrUnknownGeometry) Error() string {
	return fmt.Sprintf("cannot serialize geometry type %d (%s) to GeoJSON", uint8(e.Type), e.Type)
}
