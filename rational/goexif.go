package rational

import (
	"fmt"

	"github.com/rwcarlsen/goexif/tiff"
	"github.com/soypat/fraction"
)

// FromTag returns the rational values held by a goexif TIFF tag. Signed and
// unsigned rationals are both widened to int64.
func FromTag(t *tiff.Tag, opts ...fraction.Option) ([]fraction.Fraction[int64], error) {
	if t.Format() != tiff.RatVal {
		return nil, fmt.Errorf("%w: tag %#04x has data type %d", ErrType, t.Id, t.Type)
	}
	fs := make([]fraction.Fraction[int64], t.Count)
	for i := range fs {
		num, den, err := t.Rat2(i)
		if err != nil {
			return nil, err
		}
		fs[i], err = fraction.Of(num, den, rawOptions(opts)...)
		if err != nil {
			return nil, fmt.Errorf("tag %#04x value %d: %w", t.Id, i, err)
		}
	}
	return fs, nil
}
