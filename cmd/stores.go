package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	storesEnvDir  string
	storesOutFile string
)

// storesCmd is the parent command for store registry operations.
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Manage the store registry",
}

// storesGenerateCmd builds the registry file from per-store .env files.
var storesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the store registry from .env.* files",
	Long: `Scans a directory for per-store env files (.env.milano, .env.roma, ...)
and writes the consolidated TOML registry the server loads at startup.

Each env file provides TITLE, STORE_NAME, API_VERSION and ACCESS_TOKEN;
the file suffix becomes the store ID.`,
	RunE: runStoresGenerate,
}

func init() {
	storesGenerateCmd.Flags().StringVar(&storesEnvDir, "dir", ".", "Directory to scan for .env.* files")
	storesGenerateCmd.Flags().StringVar(&storesOutFile, "out", "config_stores.toml", "Output registry file")

	storesCmd.AddCommand(storesGenerateCmd)
	RootCmd.AddCommand(storesCmd)
}

func runStoresGenerate(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob(filepath.Join(storesEnvDir, ".env.*"))
	if err != nil {
		return err
	}
	sort.Strings(matches)

	var b strings.Builder
	count := 0

	for _, path := range matches {
		id := strings.TrimPrefix(filepath.Base(path), ".env.")
		if id == "" || id == "example" {
			continue
		}

		vars, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		storeName := vars["STORE_NAME"]
		token := vars["ACCESS_TOKEN"]
		if storeName == "" || token == "" {
			fmt.Fprintf(os.Stderr, "skipping %s: STORE_NAME and ACCESS_TOKEN are required\n", path)
			continue
		}

		title := vars["TITLE"]
		if title == "" {
			title = id
		}
		apiVersion := vars["API_VERSION"]
		if apiVersion == "" {
			apiVersion = "2025-01"
		}

		fmt.Fprintf(&b, "[stores.%s]\n", id)
		fmt.Fprintf(&b, "title = %q\n", title)
		fmt.Fprintf(&b, "store_name = %q\n", storeName)
		fmt.Fprintf(&b, "api_version = %q\n", apiVersion)
		fmt.Fprintf(&b, "access_token = %q\n\n", token)
		count++
	}

	if count == 0 {
		return fmt.Errorf("no usable .env.* files found in %s", storesEnvDir)
	}

	// Registry carries credentials, keep it out of group/other hands.
	if err := os.WriteFile(storesOutFile, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", storesOutFile, err)
	}

	fmt.Printf("wrote %d stores to %s\n", count, storesOutFile)
	return nil
}
