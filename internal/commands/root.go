package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goseal/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goseal [flags] command [flags]",
		Short: "Password-based file encryption utility",
		Long: `A password-based file encryption utility. Derives a key from your
password, encrypts and authenticates each file independently, and writes
self-contained containers that detect tampering on decryption.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	viper.SetEnvPrefix("goseal")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")
	root.PersistentFlags().Bool("delete", false, "Delete the source file after successful processing")
	root.PersistentFlags().Bool("dry-run", false, "Preview what would be processed without touching any file")
	root.PersistentFlags().StringP("output", "o", ".", "Directory to write output files to")
	root.PersistentFlags().String("suite", "aes-gcm", "Cipher suite (aes-gcm or chacha20)")
	root.PersistentFlags().String("suffix", ".enc", "Suffix for encrypted files")

	root.PersistentFlags().StringP("password", "p", "", "Password (prompted for when neither --password nor --password-file is given)")
	root.PersistentFlags().String("password-file", "", "Path to a file holding the password")

	root.PersistentFlags().StringSliceP("include", "i", nil, "Glob patterns selecting files when walking directories")
	root.PersistentFlags().StringSliceP("exclude", "e", nil, "Glob patterns excluding files when walking directories")
	root.PersistentFlags().String("include-from", "", "JSONC file with include patterns")
	root.PersistentFlags().String("exclude-from", "", "JSONC file with exclude patterns")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewCheckCommand(cfg))

	return root
}
