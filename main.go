package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/github/pkcs7/certstore"
	"github.com/github/pkcs7/pinentry"
	"github.com/github/pkcs7/pkcs7"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// This can be set at build time by running
	// go build -ldflags "-X main.versionString=$(git describe --tags)"
	versionString = "undefined"

	// common usage error response if the user provides incompatible options
	usageError = errors.New("specify --help, --sign, --verify, --encrypt, --decrypt, --parse, or --list-keys")

	// Action flags
	helpFlag     = getopt.BoolLong("help", 'h', "print this help message")
	versionFlag  = getopt.BoolLong("version", 'v', "print the version number")
	signFlag     = getopt.BoolLong("sign", 's', "make a signature")
	verifyFlag   = getopt.BoolLong("verify", 0, "verify a signature")
	encryptFlag  = getopt.BoolLong("encrypt", 'e', "encrypt a message for --recipient certificates")
	decryptFlag  = getopt.BoolLong("decrypt", 'd', "decrypt a message")
	parseFlag    = getopt.BoolLong("parse", 'p', "describe a PKCS7 structure as JSON")
	listKeysFlag = getopt.BoolLong("list-keys", 0, "show keys")

	// Option flags
	localUserOpt     = getopt.StringLong("local-user", 'u', "", "use USER-ID to sign or decrypt", "USER-ID")
	detachSignFlag   = getopt.BoolLong("detach-sign", 'b', "make a detached signature")
	armorFlag        = getopt.BoolLong("armor", 'a', "create ascii armored output")
	smimeFlag        = getopt.BoolLong("smime", 0, "create S/MIME output")
	informOpt        = getopt.EnumLong("inform", 0, []string{"auto", "der", "pem", "smime"}, "auto", "input format", "{auto|der|pem|smime}")
	outputOpt        = getopt.StringLong("output", 'o', "", "write output to FILE instead of stdout", "FILE")
	identityOpt      = getopt.ListLong("identity", 'i', "load identities from a PKCS#12 or PEM FILE", "FILE")
	recipientOpt     = getopt.ListLong("recipient", 'r', "encrypt for the certificate in FILE, or the identity matching USER-ID", "FILE|USER-ID")
	cafileOpt        = getopt.StringLong("cafile", 0, "", "trust the certificates in FILE", "FILE")
	cipherOpt        = getopt.StringLong("cipher", 0, pkcs7.DefaultCipher, "content encryption cipher", "NAME")
	digestOpt        = getopt.StringLong("digest", 0, "sha256", "signature digest", "NAME")
	textFlag         = getopt.BoolLong("text", 0, "treat the content as text/plain")
	noCertsFlag      = getopt.BoolLong("no-certs", 0, "don't include certificates in the signature")
	noAttributesFlag = getopt.BoolLong("no-attributes", 0, "sign without authenticated attributes")
	noVerifyFlag     = getopt.BoolLong("no-verify", 0, "don't validate signer certificates")
	statusFdOpt      = getopt.IntLong("status-fd", 0, -1, "write special status strings to the file descriptor n.", "n")
	keyFormatOpt     = getopt.EnumLong("keyid-format", 0, []string{"long"}, "long", "select  how  to  display key IDs.", "{long}")
	includeCertsOpt  = getopt.IntLong("include-certs", 0, -2, "-3 is the same as -2, but ommits issuer when cert has Authority Information Access extension. -2 includes all certs except root. -1 includes all certs. 0 includes no certs. 1 includes leaf cert. >1 includes n from the leaf. Default -2.", "n")
	passphraseOpt    = getopt.StringLong("passphrase", 0, "", "passphrase for --identity files", "PASSPHRASE")
	verboseFlag      = getopt.BoolLong("verbose", 0, "log debugging output")

	// Remaining arguments
	fileArgs []string

	idents []certstore.Identity

	logger = logrus.New()

	// these are changed in tests
	stdin  io.ReadCloser  = os.Stdin
	stdout io.WriteCloser = os.Stdout
	stderr io.WriteCloser = os.Stderr
)

func main() {
	if err := runCommand(); err != nil {
		fmt.Fprintln(stderr, err)
		os.Exit(1)
	}
}

func runCommand() error {
	// Parse CLI args
	getopt.HelpColumn = 40
	getopt.SetParameters("[files]")
	getopt.Parse()
	fileArgs = getopt.Args()

	if *helpFlag {
		getopt.Usage()
		return nil
	}

	if *versionFlag {
		fmt.Fprintln(stdout, versionString)
		return nil
	}

	setupLogger()
	setupStatus()

	store, err := openIdentities()
	if err != nil {
		return err
	}
	defer store.Close()

	return dispatch()
}

// openIdentities loads the --identity files into idents.
func openIdentities() (certstore.Store, error) {
	store, err := certstore.OpenWithPassphrase(passphrase, listOpt(identityOpt)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open identities")
	}

	if idents, err = store.Identities(); err != nil {
		store.Close()
		return nil, errors.Wrap(err, "failed to get identities")
	}

	return store, nil
}

// dispatch runs the single action flag given.
func dispatch() error {
	var actions int
	for _, f := range []*bool{signFlag, verifyFlag, encryptFlag, decryptFlag, parseFlag, listKeysFlag} {
		if *f {
			actions++
		}
	}
	if actions != 1 {
		return usageError
	}

	switch {
	case *signFlag:
		if len(*localUserOpt) == 0 {
			return errors.New("specify a USER-ID to sign with")
		}
		return commandSign()

	case *verifyFlag:
		if len(*localUserOpt) > 0 {
			return errors.New("local-user cannot be specified for verification")
		} else if *detachSignFlag {
			return errors.New("detach-sign cannot be specified for verification")
		} else if *armorFlag {
			return errors.New("armor cannot be specified for verification")
		}
		return commandVerify()

	case *encryptFlag:
		if len(listOpt(recipientOpt)) == 0 {
			return errors.New("specify at least one --recipient")
		}
		return commandEncrypt()

	case *decryptFlag:
		return commandDecrypt()

	case *parseFlag:
		return commandParse()

	default:
		if len(*localUserOpt) > 0 {
			return errors.New("local-user cannot be specified for list-keys")
		} else if *detachSignFlag {
			return errors.New("detach-sign cannot be specified for list-keys")
		} else if *armorFlag {
			return errors.New("armor cannot be specified for list-keys")
		}
		return commandListKeys()
	}
}

func setupLogger() {
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if *verboseFlag {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// newEngine builds a pkcs7.Engine from the --digest and --cipher options.
func newEngine() (*pkcs7.Engine, error) {
	algs := pkcs7.DefaultAlgorithms()

	digest, ok := algs.DigestByName(*digestOpt)
	if !ok {
		return nil, errors.Errorf("unknown digest: %s", *digestOpt)
	}
	if _, ok := algs.CipherByName(*cipherOpt); !ok {
		return nil, errors.Errorf("unknown cipher: %s (choose from %v)", *cipherOpt, algs.Ciphers())
	}

	return pkcs7.New(
		pkcs7.WithAlgorithms(algs),
		pkcs7.WithDigest(digest.Hash),
		pkcs7.WithCipher(*cipherOpt),
		pkcs7.WithLogger(logger),
	), nil
}

// passphrase unlocks --identity files with --passphrase, or by asking the user
// through pinentry.
func passphrase(path string) (string, error) {
	if len(*passphraseOpt) > 0 {
		return *passphraseOpt, nil
	}

	entry, err := pinentry.NewPinentry()
	if err != nil {
		return "", err
	}

	return entry.Get(fmt.Sprintf("Enter the passphrase for %s", filepath.Base(path)))
}

// listOpt drops the empty entries getopt leaves in a reset list option.
func listOpt(opt *[]string) []string {
	var vals []string
	for _, v := range *opt {
		if len(v) > 0 {
			vals = append(vals, v)
		}
	}
	return vals
}
