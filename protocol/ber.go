package protocol

import (
	"bytes"

	"github.com/pkg/errors"
)

const (
	berClassMask      = 0xC0
	berConstructedBit = 0x20
	berTagNumberMask  = 0x1F
	berIndefinite     = 0x80
	berMaxDepth       = 64
)

var errBERTruncated = errors.New("ber2der: truncated input")

// ber2der converts BER encoded data to DER. Indefinite lengths are replaced by
// minimal definite lengths and constructed universal strings are flattened to
// their primitive form. Well formed DER passes through unchanged.
func ber2der(ber []byte) ([]byte, error) {
	if len(ber) == 0 {
		return nil, errors.New("ber2der: input is empty")
	}

	var out bytes.Buffer
	n, err := berElement(ber, &out, 0)
	if err != nil {
		return nil, err
	}

	// Leave trailing data for the caller to reject.
	out.Write(ber[n:])

	return out.Bytes(), nil
}

// berElement writes the DER form of the element at the start of ber to out and
// returns the number of input bytes it consumed.
func berElement(ber []byte, out *bytes.Buffer, depth int) (int, error) {
	if depth > berMaxDepth {
		return 0, errors.New("ber2der: nesting too deep")
	}

	tag, hdrLen, length, indefinite, err := berHeader(ber)
	if err != nil {
		return 0, err
	}

	constructed := tag[0]&berConstructedBit != 0
	if !constructed {
		if indefinite {
			return 0, errors.New("ber2der: indefinite length on primitive value")
		}
		writeDERHeader(out, tag, length)
		out.Write(ber[hdrLen : hdrLen+length])
		return hdrLen + length, nil
	}

	var (
		body     bytes.Buffer
		consumed = hdrLen
	)

	if indefinite {
		for {
			if len(ber) < consumed+2 {
				return 0, errBERTruncated
			}
			if ber[consumed] == 0 && ber[consumed+1] == 0 {
				consumed += 2
				break
			}
			n, err := berElement(ber[consumed:], &body, depth+1)
			if err != nil {
				return 0, err
			}
			consumed += n
		}
	} else {
		content := ber[hdrLen : hdrLen+length]
		for off := 0; off < len(content); {
			n, err := berElement(content[off:], &body, depth+1)
			if err != nil {
				return 0, err
			}
			off += n
		}
		consumed += length
	}

	if isUniversalString(tag) {
		flat, err := flattenString(body.Bytes())
		if err != nil {
			return 0, err
		}
		primitive := append([]byte{}, tag...)
		primitive[0] &^= berConstructedBit
		writeDERHeader(out, primitive, len(flat))
		out.Write(flat)
		return consumed, nil
	}

	writeDERHeader(out, tag, body.Len())
	out.Write(body.Bytes())

	return consumed, nil
}

// berHeader parses the identifier and length octets.
func berHeader(ber []byte) (tag []byte, hdrLen, length int, indefinite bool, err error) {
	if len(ber) < 2 {
		err = errBERTruncated
		return
	}

	hdrLen = 1
	if ber[0]&berTagNumberMask == berTagNumberMask {
		for {
			if hdrLen >= len(ber) {
				err = errBERTruncated
				return
			}
			b := ber[hdrLen]
			hdrLen++
			if b&0x80 == 0 {
				break
			}
		}
	}
	tag = ber[:hdrLen]

	if hdrLen >= len(ber) {
		err = errBERTruncated
		return
	}
	l := ber[hdrLen]
	hdrLen++

	switch {
	case l == berIndefinite:
		indefinite = true
	case l&0x80 == 0:
		length = int(l)
	default:
		n := int(l & 0x7F)
		if n > 4 {
			err = errors.New("ber2der: length too large")
			return
		}
		if hdrLen+n > len(ber) {
			err = errBERTruncated
			return
		}
		for _, b := range ber[hdrLen : hdrLen+n] {
			length = length<<8 | int(b)
		}
		hdrLen += n
	}

	if !indefinite && (length < 0 || hdrLen+length > len(ber)) {
		err = errBERTruncated
	}

	return
}

func writeDERHeader(out *bytes.Buffer, tag []byte, length int) {
	out.Write(tag)

	if length < 0x80 {
		out.WriteByte(byte(length))
		return
	}

	var lb []byte
	for l := length; l > 0; l >>= 8 {
		lb = append([]byte{byte(l)}, lb...)
	}
	out.WriteByte(0x80 | byte(len(lb)))
	out.Write(lb)
}

// isUniversalString reports whether the tag is a single byte universal string
// type, which DER requires to be primitive.
func isUniversalString(tag []byte) bool {
	if len(tag) != 1 || tag[0]&berClassMask != 0 {
		return false
	}

	switch tag[0] & berTagNumberMask {
	case 0x04, // OCTET STRING
		0x0C, // UTF8String
		0x12, // NumericString
		0x13, // PrintableString
		0x14, // T61String
		0x16, // IA5String
		0x1A, // VisibleString
		0x1E: // BMPString
		return true
	}

	return false
}

// flattenString concatenates the values of the already normalized segments of
// a constructed string.
func flattenString(der []byte) ([]byte, error) {
	flat := []byte{}
	for len(der) > 0 {
		_, hdrLen, length, _, err := berHeader(der)
		if err != nil {
			return nil, err
		}
		flat = append(flat, der[hdrLen:hdrLen+length]...)
		der = der[hdrLen+length:]
	}

	return flat, nil
}
