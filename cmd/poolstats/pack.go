package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danielkrupinski/stringpool"
	"github.com/spf13/cobra"
)

var (
	packBlockCap  int
	packTerminate bool
	packOffHeap   bool
)

func init() {
	cmd := newPackCmd()
	cmd.Flags().IntVar(&packBlockCap, "block-capacity", stringpool.DefaultStandardBlockCapacity,
		"Standard block capacity in bytes")
	cmd.Flags().BoolVar(&packTerminate, "terminate", false, "Store zero-terminated strings")
	cmd.Flags().BoolVar(&packOffHeap, "off-heap", false, "Back blocks with mapped memory")
	rootCmd.AddCommand(cmd)
}

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <file>...",
		Short: "Pack file lines into pool blocks and report utilization",
		Long: `The pack command stores every line of the given files in a string pool
and reports how tightly the lines pack into blocks.

Example:
  poolstats pack words.txt
  poolstats pack --block-capacity 4096 words.txt
  poolstats pack --terminate --off-heap big.log`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args)
		},
	}
	return cmd
}

type PackStats struct {
	Files       int
	Lines       int
	InputBytes  int
	Blocks      int
	UsedUnits   int
	FreeUnits   int
	Capacity    int
	Utilization float64
}

func runPack(args []string) error {
	opts := []stringpool.Option[byte]{
		stringpool.WithStandardBlockCapacity[byte](packBlockCap),
	}
	if packTerminate {
		opts = append(opts, stringpool.WithTerminator[byte]())
	}
	if packOffHeap {
		opts = append(opts, stringpool.WithSource[byte](stringpool.OffHeapSource[byte]{}))
	}
	pool := stringpool.New(opts...)

	stats := PackStats{Files: len(args)}
	for _, path := range args {
		printVerbose("Packing %s\n", path)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		lines, bytes, err := packLines(pool, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to pack %s: %w", path, err)
		}
		stats.Lines += lines
		stats.InputBytes += bytes
	}

	poolStats := pool.Stats()
	stats.Blocks = poolStats.Blocks
	stats.UsedUnits = poolStats.UsedUnits
	stats.FreeUnits = poolStats.FreeUnits
	stats.Capacity = poolStats.CapacityUnits
	if stats.Capacity > 0 {
		stats.Utilization = float64(stats.UsedUnits) * 100.0 / float64(stats.Capacity)
	}

	if err := pool.Close(); err != nil {
		printError("failed to release pool storage: %v\n", err)
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nPack Statistics:\n")
	printInfo("%s\n\n", strings.Repeat("=", 40))

	printInfo("Input:\n")
	printInfo("  Files: %d\n", stats.Files)
	printInfo("  Lines: %s\n", formatNumber(int64(stats.Lines)))
	printInfo("  Line bytes: %s\n\n", formatBytes(int64(stats.InputBytes)))

	printInfo("Blocks:\n")
	printInfo("  Count: %d (capacity %s each)\n", stats.Blocks, formatBytes(int64(packBlockCap)))
	printInfo("  Used: %s\n", formatBytes(int64(stats.UsedUnits)))
	printInfo("  Free: %s\n", formatBytes(int64(stats.FreeUnits)))
	printInfo("  Utilization: %.1f%%\n", stats.Utilization)

	return nil
}

// packLines stores each line of r in the pool and reports line and byte
// totals.
func packLines(pool *stringpool.Pool[byte], r io.Reader) (lines, bytes int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if _, err := stringpool.AddString(pool, line); err != nil {
			return lines, bytes, err
		}
		lines++
		bytes += len(line)
	}
	return lines, bytes, scanner.Err()
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Add commas
	var result strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
