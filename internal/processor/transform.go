package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/goseal/internal/config"
	"github.com/idelchi/goseal/internal/crypt"
	"github.com/idelchi/goseal/internal/fileutil"
)

// processFile handles the encryption or decryption of a single file. The
// output is written atomically: either the full file appears under its
// final name or nothing is left behind.
func (p *Processor) processFile(filename string) (outPath string, size int64, err error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return "", 0, fmt.Errorf("reading file: %w", err)
	}

	var output []byte

	if p.cfg.Decrypt {
		name, plaintext, err := crypt.Decrypt(data, p.password, p.suite)
		if err != nil {
			return "", 0, fmt.Errorf("decrypting file: %w", err)
		}

		// The output name is whatever was recorded at encryption time.
		outPath = filepath.Join(p.cfg.Output, name)
		output = plaintext
	} else {
		if int64(len(data)) > crypt.MaxPlaintextSize {
			return "", 0, fmt.Errorf("encrypting file: %w", crypt.ErrPlaintextTooLarge)
		}

		name := filepath.Base(filename)

		blob, err := crypt.Encrypt(name, data, p.password, p.suite)
		if err != nil {
			return "", 0, fmt.Errorf("encrypting file: %w", err)
		}

		outPath = filepath.Join(p.cfg.Output, EncryptedName(filename, p.cfg))
		output = blob
	}

	size, err = fileutil.WriteAtomic(outPath, output)
	if err != nil {
		return "", 0, err
	}

	return outPath, size, nil
}

// EncryptedName returns the output filename for an encrypted file: the
// input's stem (base name with its extension stripped) plus the configured
// suffix. Two distinct inputs can share a stem; the last writer wins.
func EncryptedName(filename string, cfg *config.Config) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return stem + cfg.Suffix
}
