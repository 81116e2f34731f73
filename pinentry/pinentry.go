package pinentry

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// EnvVar names a pinentry program to use instead of searching PATH.
const EnvVar = "PKCS7_PINENTRY"

// programs are tried in order when EnvVar isn't set.
var programs = []string{
	"pinentry-mac",
	"pinentry-gnome3",
	"pinentry-qt",
	"pinentry-curses",
	"pinentry-tty",
	"pinentry",
}

// Pinentry gets a passphrase from the user through a pinentry program.
type Pinentry struct {
	path string
}

// NewPinentry locates the pinentry program used to get the passphrase.
func NewPinentry() (*Pinentry, error) {
	if fromEnv := os.Getenv(EnvVar); len(fromEnv) > 0 {
		if path, err := exec.LookPath(fromEnv); err == nil && len(path) > 0 {
			return &Pinentry{path: path}, nil
		}
	}

	for _, program := range programs {
		if path, err := exec.LookPath(program); err == nil && len(path) > 0 {
			return &Pinentry{path: path}, nil
		}
	}

	return nil, errors.New("failed to find suitable program to enter passphrase")
}

// Get executes the pinentry program and returns the passphrase entered by
// the user. desc is shown above the prompt.
// see https://www.gnupg.org/documentation/manuals/assuan/Introduction.html for more details
func (pin *Pinentry) Get(desc string) (string, error) {
	cmd := exec.Command(pin.path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", err
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}

	if err = cmd.Start(); err != nil {
		return "", errors.Wrapf(err, "failed to start %s", pin.path)
	}
	defer cmd.Wait()
	defer stdin.Close()

	r := bufio.NewReader(stdout)
	if line, err := readLine(r); err != nil {
		return "", err
	} else if !strings.HasPrefix(line, "OK") {
		return "", errors.Errorf("failed to initialize pinentry, got response: %v", line)
	}

	var commands []string
	if terminal := os.Getenv("TERM"); len(terminal) > 0 {
		commands = append(commands, "OPTION ttytype="+terminal)
	}
	if tty := os.Getenv("GPG_TTY"); len(tty) > 0 {
		commands = append(commands, "OPTION ttyname="+tty)
	}
	commands = append(commands,
		"SETPROMPT Passphrase:",
		"SETTITLE pkcs7",
		"SETDESC "+escape(desc),
	)

	for _, command := range commands {
		if err := setOption(stdin, r, command); err != nil {
			return "", err
		}
	}

	if _, err = fmt.Fprint(stdin, "GETPIN\n"); err != nil {
		return "", err
	}

	line, err := readLine(r)
	if err != nil {
		return "", err
	}

	if _, err = fmt.Fprint(stdin, "BYE\n"); err != nil {
		return "", err
	}
	io.Copy(io.Discard, r)

	if !strings.HasPrefix(line, "D ") {
		return "", errors.New(line)
	}

	return url.PathUnescape(strings.TrimPrefix(line, "D "))
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", errors.Wrap(err, "failed to read from pinentry")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func setOption(w io.Writer, r *bufio.Reader, command string) error {
	if _, err := fmt.Fprintf(w, "%s\n", command); err != nil {
		return err
	}

	line, err := readLine(r)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(line, "OK") {
		return errors.Errorf("pinentry rejected %q: %s", strings.SplitN(command, " ", 2)[0], line)
	}

	return nil
}

var escaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

func escape(s string) string {
	return escaper.Replace(s)
}
