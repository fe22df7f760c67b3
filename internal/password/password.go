// Package password resolves the encryption password from a flag, a file,
// or an interactive no-echo prompt.
package password

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/idelchi/goseal/internal/config"
)

// Read returns the UTF-8 password bytes for the run. Precedence: the
// --password flag (or GOSEAL_PASSWORD), then --password-file, then an
// interactive prompt. Encryption prompts twice and requires both entries
// to match.
func Read(cfg *config.Config) ([]byte, error) {
	switch {
	case cfg.Password != "":
		return []byte(cfg.Password), nil
	case cfg.PasswordFile != "":
		data, err := os.ReadFile(cfg.PasswordFile)
		if err != nil {
			return nil, fmt.Errorf("reading password file: %w", err)
		}

		return []byte(strings.TrimSpace(string(data))), nil
	}

	return prompt(!cfg.Decrypt)
}

// prompt reads the password from the terminal without echo.
func prompt(confirm bool) ([]byte, error) {
	fd := int(syscall.Stdin)

	if !term.IsTerminal(fd) {
		return nil, errors.New("no password provided and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Password: ")

	pw, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	if len(pw) == 0 {
		return nil, errors.New("empty password")
	}

	if confirm {
		fmt.Fprint(os.Stderr, "Confirm password: ")

		again, err := term.ReadPassword(fd)

		fmt.Fprintln(os.Stderr)

		if err != nil {
			return nil, fmt.Errorf("reading password confirmation: %w", err)
		}

		if !bytes.Equal(pw, again) {
			return nil, errors.New("passwords do not match")
		}
	}

	return pw, nil
}
