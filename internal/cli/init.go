package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/PeterLuschny/tablInspector/internal/store"
)

// storeFileName is the fingerprint database file inside the data dir.
const storeFileName = "fingerprints.db"

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize tabl configuration and fingerprint store",
		Long:  "Create the configuration directory with a default config.yaml and initialize the fingerprint database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return errors.Wrap(err, "writing default config")
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	st, err := store.Open(filepath.Join(dataDir, storeFileName))
	if err != nil {
		return errors.Wrap(err, "initializing fingerprint store")
	}
	if err := st.Close(); err != nil {
		return errors.Wrap(err, "closing fingerprint store")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "tabl initialized successfully")
	return nil
}

// openStore opens the fingerprint store in the resolved data directory.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return store.Open(filepath.Join(dataDir, storeFileName))
}
