package pkcs7

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"mime"
	"net/textproto"
	"strings"

	"github.com/pkg/errors"
)

const (
	mediaMultipartSigned = "multipart/signed"
	mediaPKCS7Mime       = "application/pkcs7-mime"
	mediaPKCS7Signature  = "application/pkcs7-signature"

	textHeader = "Content-Type: text/plain\r\n\r\n"
)

// decodeSMIME reads an RFC 5322 message carrying PKCS7. multipart/signed
// messages also yield the first body part, which is the signed content.
func decodeSMIME(_ *Engine, b []byte) decodeResult {
	header, body, err := readEntity(b)
	if err != nil {
		return decodeResult{}
	}

	mediaType, params, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil {
		return decodeResult{}
	}

	switch mediaType {
	case mediaMultipartSigned:
		c, content, err := decodeMultipartSigned(body, params["boundary"])
		return decodeResult{container: c, content: content, recognized: true, err: err}
	case mediaPKCS7Mime, "application/x-pkcs7-mime", mediaPKCS7Signature, "application/x-pkcs7-signature":
		der, err := decodeBody(header, body)
		if err != nil {
			return decodeResult{recognized: true, err: err}
		}
		c, err := parseContainer(der)
		return decodeResult{container: c, recognized: true, err: err}
	default:
		return decodeResult{}
	}
}

// readEntity splits a MIME entity into its header and body.
func readEntity(b []byte) (textproto.MIMEHeader, []byte, error) {
	br := bufio.NewReader(bytes.NewReader(b))
	header, err := textproto.NewReader(br).ReadMIMEHeader()
	if err != nil {
		return nil, nil, err
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, nil, err
	}

	return header, body, nil
}

// decodeBody undoes the entity's Content-Transfer-Encoding.
func decodeBody(header textproto.MIMEHeader, body []byte) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(header.Get("Content-Transfer-Encoding"))) {
	case "base64":
		der, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(body)), ""))
		if err != nil {
			return nil, errors.Wrap(err, "bad base64 body")
		}
		return der, nil
	case "", "binary", "7bit", "8bit":
		return body, nil
	default:
		return nil, errors.Errorf("unsupported transfer encoding %q", header.Get("Content-Transfer-Encoding"))
	}
}

func decodeMultipartSigned(body []byte, boundary string) (Container, []byte, error) {
	if boundary == "" {
		return nil, nil, errors.New("multipart/signed without boundary")
	}

	parts := splitMultipart(body, boundary)
	if len(parts) < 2 {
		return nil, nil, errors.Errorf("multipart/signed has %d parts, want 2", len(parts))
	}

	content := []byte(strings.Join(parts[0], "\r\n"))

	header, sigBody, err := readEntity([]byte(strings.Join(parts[1], "\r\n")))
	if err != nil {
		return nil, nil, errors.Wrap(err, "bad signature part")
	}
	der, err := decodeBody(header, sigBody)
	if err != nil {
		return nil, nil, err
	}

	c, err := parseContainer(der)
	if err != nil {
		return nil, nil, err
	}

	return c, content, nil
}

// splitMultipart returns the lines of each body part. The line break before a
// delimiter belongs to the delimiter.
func splitMultipart(body []byte, boundary string) [][]string {
	var (
		delim = "--" + boundary
		final = delim + "--"
		parts [][]string
		cur   []string
		in    bool
	)

	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch strings.TrimRight(line, " \t") {
		case final:
			if in {
				parts = append(parts, cur)
			}
			return parts
		case delim:
			if in {
				parts = append(parts, cur)
			}
			cur = []string{}
			in = true
		default:
			if in {
				cur = append(cur, line)
			}
		}
	}

	return parts
}

// EncodeSMIME writes c as an S/MIME message. A detached SignedData with
// content becomes multipart/signed with the content as the first part.
// Everything else becomes application/pkcs7-mime. The first part is sent with
// CRLF line endings, matching what Sign digests by default. With the Text flag
// the content gets the same text/plain header Sign adds. With Binary the
// content is sent as is and must already use CRLF line endings.
func (e *Engine) EncodeSMIME(c Container, content []byte, flags Flags) ([]byte, error) {
	const op = "encode smime"

	if c == nil {
		return nil, errorf(ArgumentError, op, "nil container")
	}

	der, err := c.der()
	if err != nil {
		return nil, wrapError(ArgumentError, op, err, "failed to encode container")
	}

	if sd, ok := c.(*SignedData); ok && sd.IsDetached() && content != nil {
		switch {
		case flags.Has(Text):
			content = textContent(content)
		case !flags.Has(Binary):
			content = canonicalizeCRLF(content)
		case !bytes.Equal(content, canonicalizeCRLF(content)):
			return nil, errorf(ArgumentError, op, "binary content must use CRLF line endings")
		}
		return e.encodeMultipartSigned(sd, der, content)
	}

	params := map[string]string{"name": "smime.p7m"}
	if st := smimeType(c); st != "" {
		params["smime-type"] = st
	}

	buf := new(bytes.Buffer)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Disposition: attachment; filename=\"smime.p7m\"\r\n")
	buf.WriteString("Content-Type: " + mime.FormatMediaType(mediaPKCS7Mime, params) + "\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	writeBase64(buf, der)

	return buf.Bytes(), nil
}

func (e *Engine) encodeMultipartSigned(sd *SignedData, der, content []byte) ([]byte, error) {
	rnd := make([]byte, 16)
	if _, err := io.ReadFull(e.rand, rnd); err != nil {
		return nil, wrapError(ArgumentError, "encode smime", err, "failed to generate boundary")
	}
	boundary := "----" + strings.ToUpper(hex.EncodeToString(rnd))

	var mics []string
	for _, algo := range sd.DigestAlgorithms() {
		if d, ok := e.algs.DigestByOID(algo.Algorithm); ok {
			mics = append(mics, d.MIC)
		}
	}
	if len(mics) == 0 {
		mics = []string{"sha-256"}
	}

	ct := mime.FormatMediaType(mediaMultipartSigned, map[string]string{
		"protocol": mediaPKCS7Signature,
		"micalg":   strings.Join(mics, ","),
		"boundary": boundary,
	})

	buf := new(bytes.Buffer)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: " + ct + "\r\n\r\n")
	buf.WriteString("This is an S/MIME signed message\r\n\r\n")
	buf.WriteString("--" + boundary + "\r\n")
	buf.Write(content)
	buf.WriteString("\r\n--" + boundary + "\r\n")
	buf.WriteString("Content-Type: " + mime.FormatMediaType(mediaPKCS7Signature, map[string]string{"name": "smime.p7s"}) + "\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	buf.WriteString("Content-Disposition: attachment; filename=\"smime.p7s\"\r\n\r\n")
	writeBase64(buf, der)
	buf.WriteString("--" + boundary + "--\r\n")

	return buf.Bytes(), nil
}

func smimeType(c Container) string {
	switch c := c.(type) {
	case *SignedData:
		if len(c.psd.SignerInfos) == 0 && len(c.psd.Certificates) > 0 {
			return "certs-only"
		}
		return "signed-data"
	case *EnvelopedData:
		return "enveloped-data"
	case *SignedAndEnvelopedData:
		return "signed-and-enveloped-data"
	default:
		return ""
	}
}

// writeBase64 writes b as base64 in CRLF terminated lines of 76 columns.
func writeBase64(buf *bytes.Buffer, b []byte) {
	const width = 76

	enc := base64.StdEncoding.EncodeToString(b)
	for len(enc) > width {
		buf.WriteString(enc[:width] + "\r\n")
		enc = enc[width:]
	}
	if len(enc) > 0 {
		buf.WriteString(enc + "\r\n")
	}
}

// textContent converts line endings to CRLF and prepends a text/plain header.
func textContent(content []byte) []byte {
	return append([]byte(textHeader), canonicalizeCRLF(content)...)
}

func canonicalizeCRLF(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\n"), []byte("\r\n"))
}

// stripTextHeader removes the MIME header Text signing added. ok is false if
// the header is missing or names a type other than text/plain.
func stripTextHeader(content []byte) ([]byte, bool) {
	header, body, err := readEntity(content)
	if err != nil {
		return nil, false
	}

	mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil || mediaType != "text/plain" {
		return nil, false
	}

	return body, true
}
