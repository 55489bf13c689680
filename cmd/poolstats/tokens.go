package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/danielkrupinski/stringpool"
	"github.com/danielkrupinski/stringpool/intern"
	"github.com/spf13/cobra"
)

var (
	tokensShards   int
	tokensBlockCap int
	tokensTop      int
)

func init() {
	cmd := newTokensCmd()
	cmd.Flags().IntVar(&tokensShards, "shards", intern.DefaultShards, "Interner shard count")
	cmd.Flags().IntVar(&tokensBlockCap, "block-capacity", stringpool.DefaultStandardBlockCapacity,
		"Standard block capacity in bytes")
	cmd.Flags().IntVar(&tokensTop, "top", 10, "Most frequent tokens to list (0 disables)")
	rootCmd.AddCommand(cmd)
}

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>...",
		Short: "Intern whitespace-separated tokens and report deduplication",
		Long: `The tokens command reads every whitespace-separated token from the
given files, interns them into pooled storage, and reports how far
deduplication shrinks the data.

Example:
  poolstats tokens access.log
  poolstats tokens --top 20 *.txt
  poolstats tokens --json corpus.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args)
		},
	}
	return cmd
}

type TokenCount struct {
	Token string
	Count int
}

type TokenStats struct {
	Files          int
	TotalTokens    int
	DistinctTokens int
	InputBytes     int
	PooledBytes    int
	CapacityBytes  int
	Blocks         int
	DedupRatio     float64
	Top            []TokenCount
}

func runTokens(args []string) error {
	in := intern.New(
		intern.WithShards(tokensShards),
		intern.WithPoolOptions(stringpool.WithStandardBlockCapacity[byte](tokensBlockCap)),
	)
	defer in.Close()

	counts := make(map[string]int)
	stats := TokenStats{Files: len(args)}

	for _, path := range args {
		printVerbose("Reading %s\n", path)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		tokens, bytes, err := countTokens(in, f, counts)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		stats.TotalTokens += tokens
		stats.InputBytes += bytes
	}

	stats.DistinctTokens = in.Len()
	poolStats := in.Stats()
	stats.PooledBytes = poolStats.UsedUnits
	stats.CapacityBytes = poolStats.CapacityUnits
	stats.Blocks = poolStats.Blocks
	if stats.InputBytes > 0 {
		stats.DedupRatio = float64(stats.PooledBytes) / float64(stats.InputBytes)
	}
	stats.Top = topTokens(counts, tokensTop)

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nToken Statistics:\n\n")
	printInfo("Input:\n")
	printInfo("  Files: %d\n", stats.Files)
	printInfo("  Tokens: %s (%s distinct)\n",
		formatNumber(int64(stats.TotalTokens)), formatNumber(int64(stats.DistinctTokens)))
	printInfo("  Token bytes: %s\n\n", formatBytes(int64(stats.InputBytes)))

	printInfo("Pooled Storage:\n")
	printInfo("  Blocks: %d\n", stats.Blocks)
	printInfo("  Used: %s of %s\n",
		formatBytes(int64(stats.PooledBytes)), formatBytes(int64(stats.CapacityBytes)))
	printInfo("  Dedup ratio: %.3f\n", stats.DedupRatio)

	if len(stats.Top) > 0 {
		printInfo("\nMost Frequent:\n")
		for _, tc := range stats.Top {
			printInfo("  %6d  %s\n", tc.Count, tc.Token)
		}
	}

	return nil
}

// countTokens interns every whitespace-separated token from r, accumulating
// occurrence counts keyed by the canonical pooled copies.
func countTokens(in *intern.Interner, r io.Reader, counts map[string]int) (tokens, bytes int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		pooled, err := in.Intern(scanner.Text())
		if err != nil {
			return tokens, bytes, err
		}
		counts[pooled]++
		tokens++
		bytes += len(pooled)
	}
	return tokens, bytes, scanner.Err()
}

// topTokens returns the n most frequent tokens, ties broken alphabetically
// so output is stable.
func topTokens(counts map[string]int, n int) []TokenCount {
	if n <= 0 {
		return nil
	}
	top := make([]TokenCount, 0, len(counts))
	for tok, c := range counts {
		top = append(top, TokenCount{Token: tok, Count: c})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Token < top[j].Token
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
