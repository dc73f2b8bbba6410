package cmd

import (
	"fmt"

	"github.com/cwbudde/clsaxpy/internal/compute"
	"github.com/spf13/cobra"
)

var devicesBackend string

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List platforms and devices of a backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := compute.NewBackend(devicesBackend)
		if err != nil {
			return err
		}

		info := backend.Info()
		fmt.Printf("Backend: %s %s (%s)\n", info.Name, info.Version, info.Description)

		platforms, err := backend.Platforms()
		if err != nil {
			return fmt.Errorf("failed to enumerate platforms: %w", err)
		}
		if len(platforms) == 0 {
			fmt.Println("No platforms found")
			return nil
		}

		for i, platform := range platforms {
			fmt.Printf("Platform %d: %s (%s, %s)\n", i, platform.Name, platform.Vendor, platform.Version)
			if len(platform.Devices) == 0 {
				fmt.Println("  no devices")
				continue
			}
			for j, device := range platform.Devices {
				fmt.Printf("  Device %d: %s [%s] %s, %d compute units\n",
					j, device.Name, device.Type, device.Version, device.MaxComputeUnits)
			}
		}

		return nil
	},
}

func init() {
	devicesCmd.Flags().StringVar(&devicesBackend, "backend", "opencl", "Compute backend: opencl, mock")
	rootCmd.AddCommand(devicesCmd)
}
