package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/lukaszgryglicki/julia4d/internal/julia4d"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "julia4d [scene.yaml]",
	Short: "Probe-render sliced 4D quaternion and hypercomplex Julia sets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := julia4d.SetupLogger(viper.GetString("log-level"), viper.GetBool("debug")); err != nil {
			return err
		}
		julia4d.AlwaysBVH = viper.GetBool("always-bvh")
		julia4d.NeverBVH = viper.GetBool("never-bvh")

		if viper.GetBool("profile") {
			f, err := os.Create("cpu.out")
			if err != nil {
				return err
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return err
			}
			defer func() {
				pprof.StopCPUProfile()
				_ = f.Close()
			}()
		}

		cfg := "scenes/julia.yaml"
		if len(args) > 0 {
			cfg = args[0]
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return julia4d.Run(ctx, cfg, julia4d.Options{
			Width:     viper.GetInt("width"),
			Height:    viper.GetInt("height"),
			Workers:   viper.GetInt("workers"),
			ProbeRays: viper.GetInt("probe-rays"),
			ASCII:     viper.GetBool("ascii"),
		})
	},
	SilenceUsage: true,
}

func init() {
	fl := rootCmd.Flags()
	fl.Int("width", 0, "probe width in characters (0: scene file)")
	fl.Int("height", 0, "probe height in characters (0: scene file)")
	fl.Int("workers", 0, "worker goroutines (0: NumCPU)")
	fl.Int("probe-rays", 0, "random rays for the coverage estimate (0: scene file)")
	fl.Bool("ascii", true, "print the shaded ASCII preview")
	fl.Bool("debug", false, "debug logging and ray logs")
	fl.String("log-level", "info", "log level")
	fl.Bool("always-bvh", false, "always use the BVH for nearest hits")
	fl.Bool("never-bvh", false, "never use the BVH for nearest hits")
	fl.Bool("profile", false, "write a CPU profile to cpu.out")
	_ = viper.BindPFlags(fl)

	viper.SetEnvPrefix("JULIA4D")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
