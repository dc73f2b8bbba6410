package cmd

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/clsaxpy/internal/compute"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	backendName string
	deviceType  string
	elemCount   int
	scalarA     float32
	noProfile   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the SAXPY kernel once and report timing",
	Long: `Resolves a device, builds the embedded saxpy_float kernel, stages the
two input vectors, dispatches over the full range and reads back the result.
The reference inputs are x[i]=1.0 and y[i]=1.0+i.`,
	RunE: runSaxpy,
}

func init() {
	runCmd.Flags().StringVar(&backendName, "backend", "opencl", "Compute backend: opencl, mock")
	runCmd.Flags().StringVar(&deviceType, "device-type", "GPU", "Device class to resolve (GPU, CPU, Accelerator, All)")
	runCmd.Flags().IntVar(&elemCount, "n", 1024, "Vector element count")
	runCmd.Flags().Float32Var(&scalarA, "a", 300.0, "Scalar multiplier")
	runCmd.Flags().BoolVar(&noProfile, "no-profile", false, "Disable device-side kernel timing")

	rootCmd.AddCommand(runCmd)
}

func runSaxpy(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()
	slog.Info("starting saxpy run",
		"run_id", runID,
		"backend", backendName,
		"device_type", deviceType,
		"n", elemCount,
		"a", scalarA)

	backend, err := compute.NewBackend(backendName)
	if err != nil {
		return err
	}

	cfg := compute.DefaultConfig()
	cfg.N = elemCount
	cfg.A = scalarA
	cfg.DeviceType = compute.DeviceType(deviceType)
	cfg.Profiling = !noProfile

	result, err := compute.Run(backend, cfg)
	if err != nil {
		return fmt.Errorf("saxpy run failed: %w", err)
	}

	fmt.Printf("results front: %g\n", result.Out[0])
	fmt.Printf("results back: %g\n", result.Out[len(result.Out)-1])

	if result.Profiled {
		slog.Info("kernel execution time",
			"run_id", runID,
			"device", result.Device.Name,
			"ns", result.KernelNanos)
	} else {
		slog.Info("run complete", "run_id", runID, "device", result.Device.Name)
	}

	return nil
}
