package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Path      string `json:"path"`
	Checksum  string `json:"checksum,omitempty"`
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := VersionInfo{
			Version:   Version,
			Commit:    Commit,
			BuildDate: BuildDate,
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		}

		// Get executable path and checksum
		if execPath, err := os.Executable(); err == nil {
			info.Path = execPath
			if f, err := os.Open(execPath); err == nil {
				h := sha256.New()
				if _, err := io.Copy(h, f); err == nil {
					info.Checksum = hex.EncodeToString(h.Sum(nil))
				}
				f.Close()
			}
		}

		if versionJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		// Human output
		fmt.Printf("usernamegen %s\n", Version)
		if Commit != "unknown" && Commit != "" {
			fmt.Printf("  commit:  %s\n", Commit)
		}
		if BuildDate != "unknown" && BuildDate != "" {
			fmt.Printf("  built:   %s\n", BuildDate)
		}
		fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
}
