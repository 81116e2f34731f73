package main

import (
	"fmt"
	"strings"

	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

func commandListKeys() error {
	for j, ident := range idents {
		cert, err := ident.Certificate()
		if err != nil {
			return errors.Wrap(err, "failed to get identity certificate")
		}

		if j > 0 {
			fmt.Fprintln(stdout, "————————————————————")
		}

		capabilities := "sign"
		if _, err := ident.Decrypter(); err == nil {
			capabilities += ", decrypt"
		}

		fmt.Fprintln(stdout, "       ID:", certHexFingerprint(cert))
		fmt.Fprintln(stdout, "      S/N:", cert.SerialNumber.Text(16))
		fmt.Fprintln(stdout, "Algorithm:", cert.PublicKeyAlgorithm.String())
		fmt.Fprintln(stdout, " Validity:", cert.NotBefore.String(), "-", cert.NotAfter.String())
		fmt.Fprintln(stdout, "   Issuer:", pkcs7.RDNSequenceString(cert.Issuer.ToRDNSequence()))
		fmt.Fprintln(stdout, "  Subject:", pkcs7.RDNSequenceString(cert.Subject.ToRDNSequence()))
		fmt.Fprintln(stdout, "   Emails:", strings.Join(certEmails(cert), ", "))
		fmt.Fprintln(stdout, "    Usage:", strings.Join(keyUsageToNames(cert.KeyUsage), ", "))
		fmt.Fprintln(stdout, "Ext Usage:", strings.Join(certExtKeyUsages(cert), ", "))
		fmt.Fprintln(stdout, "     Uses:", capabilities)
	}

	return nil
}
