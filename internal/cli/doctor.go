package cli

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose backend connectivity and local resources",
	Long: `Run support diagnostics: probe the classification backend and report
local CPU and memory pressure. Useful when uploads are slow or failing.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := newAPIClient(cfg)

	fmt.Printf("Backend: %s\n", cfg.BaseURL())

	h, err := client.Health()
	if err != nil {
		fmt.Printf("  ✗ unreachable: %v\n", err)
	} else {
		fmt.Printf("  ✓ status: %s, model loaded: %t\n", h.Status, h.ModelLoaded)
	}

	fmt.Println("\nLocal resources:")

	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		fmt.Printf("  CPU usage:    %.1f%%\n", percentages[0])
	} else {
		fmt.Printf("  CPU usage:    unavailable (%v)\n", err)
	}

	if v, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("  Memory usage: %.1f%% (%.1f / %.1f GB)\n",
			v.UsedPercent,
			float64(v.Used)/1024/1024/1024,
			float64(v.Total)/1024/1024/1024)
	} else {
		fmt.Printf("  Memory usage: unavailable (%v)\n", err)
	}

	return nil
}
