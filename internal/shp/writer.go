package shp

import (
	"io"
	"math"
)

// WriteShapes runs the two-pass write algorithm: the first pass folds
// every shape's bounds, Z range, and M range into the file-level
// aggregates and totals the file length; the second pass writes the
// header, then every record in order, accumulating the .shx index as it
// goes.
//
// shapeType is the header's declared type; every shape must match it or
// be Null, mirroring the single-type-per-file contract most shapefile
// writers hold to even though the format does not force it.
func WriteShapes(shp, shx io.Writer, shapeType ShapeType, shapes []Shape) error {
	header := aggregateHeader(shapeType, shapes)

	fileWords := int64(HeaderSize / 2)
	for _, s := range shapes {
		fileWords += 4 + int64(s.contentLength()/2)
	}
	if fileWords > math.MaxInt32 {
		return &ErrFileTooLarge{Words: fileWords}
	}
	header.FileLength = int32(fileWords)

	shxWords := int64(HeaderSize/2) + 4*int64(len(shapes))
	shxHeader := header
	shxHeader.FileLength = int32(shxWords)

	if err := WriteHeader(shp, header); err != nil {
		return err
	}
	if err := WriteHeader(shx, shxHeader); err != nil {
		return err
	}

	offset := int32(HeaderSize / 2)
	for i, s := range shapes {
		entry, err := WriteRecord(shp, int32(i+1), s)
		if err != nil {
			return err
		}
		entry.Offset = offset
		if err := writeShxEntry(shx, entry); err != nil {
			return err
		}
		offset += 4 + entry.ContentLength
	}
	return nil
}

func writeShxEntry(w io.Writer, e ShapeIndexEntry) error {
	buf := make([]byte, 8)
	putInt32BE(buf[0:4], e.Offset)
	putInt32BE(buf[4:8], e.ContentLength)
	_, err := w.Write(buf)
	return err
}

func aggregateHeader(shapeType ShapeType, shapes []Shape) Header {
	bounds := emptyBounds()
	zRange := emptyRange()
	mRange := emptyRange()

	for _, s := range shapes {
		if _, isNull := s.(NullShape); isNull {
			continue
		}
		bounds = bounds.union(s.Bounds())
		zRange, mRange = extendShapeRanges(s, zRange, mRange)
	}
	if bounds == emptyBounds() {
		bounds = Bounds{}
	}

	return Header{
		ShapeType: shapeType,
		Bounds:    bounds,
		ZRange:    zRange.resolved(),
		MRange:    mRange.resolved(),
	}
}

func extendShapeRanges(s Shape, zRange, mRange Range) (Range, Range) {
	switch v := s.(type) {
	case PointZShape:
		zRange = extendRange(zRange, v.Z)
		mRange = extendRange(mRange, v.M)
	case PointMShape:
		mRange = extendRange(mRange, v.M)
	case MultiPointZShape:
		for _, z := range v.Z {
			zRange = extendRange(zRange, z)
		}
		for _, m := range v.M {
			mRange = extendRange(mRange, m)
		}
	case MultiPointMShape:
		for _, m := range v.M {
			mRange = extendRange(mRange, m)
		}
	case PolyLineZShape:
		for _, z := range v.Z {
			zRange = extendRange(zRange, z)
		}
		for _, m := range v.M {
			mRange = extendRange(mRange, m)
		}
	case PolyLineMShape:
		for _, m := range v.M {
			mRange = extendRange(mRange, m)
		}
	case PolygonZShape:
		for _, z := range v.Z {
			zRange = extendRange(zRange, z)
		}
		for _, m := range v.M {
			mRange = extendRange(mRange, m)
		}
	case PolygonMShape:
		for _, m := range v.M {
			mRange = extendRange(mRange, m)
		}
	case MultiPatchShape:
		for _, z := range v.Z {
			zRange = extendRange(zRange, z)
		}
		for _, m := range v.M {
			mRange = extendRange(mRange, m)
		}
	}
	return zRange, mRange
}
