package images

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/jpeg"
	"io"
)

// DensityUnit is JFIF pixel density unit.
type DensityUnit uint8

const (
	DensityNoUnits DensityUnit = iota
	DensityPerInch
	DensityPerCm
)

// EnsureJFIFAPP0 inserts JFIF APP0 marker segment with pixel density if it is
// missing. Standard library encoder never writes it, so printed pages would
// lose their physical size.
func EnsureJFIFAPP0(jpegData []byte, unit DensityUnit, xdensity, ydensity uint16) ([]byte, bool, error) {
	if len(jpegData) < 4 {
		return nil, false, errors.New("jpeg too small")
	}
	if jpegData[0] != 0xFF || jpegData[1] != 0xD8 {
		return nil, false, errors.New("not a jpeg")
	}
	if jpegData[2] == 0xFF && jpegData[3] == 0xE0 {
		return jpegData, false, nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(jpegData)+18))
	buf.Write(jpegData[:2])
	buf.Write([]byte{0xFF, 0xE0})
	_ = binary.Write(buf, binary.BigEndian, uint16(0x10)) // segment length
	buf.Write([]byte{'J', 'F', 'I', 'F', 0x00, 0x01, 0x02})
	_ = binary.Write(buf, binary.BigEndian, uint8(unit))
	_ = binary.Write(buf, binary.BigEndian, xdensity)
	_ = binary.Write(buf, binary.BigEndian, ydensity)
	_ = binary.Write(buf, binary.BigEndian, uint16(0)) // no thumbnail
	buf.Write(jpegData[2:])
	return buf.Bytes(), true, nil
}

// WriteJPEG encodes img with density of dpi pixels per inch.
func WriteJPEG(w io.Writer, img image.Image, quality, dpi int) error {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return err
	}
	out, _, err := EnsureJFIFAPP0(buf.Bytes(), DensityPerInch, uint16(dpi), uint16(dpi))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
