// Command generate fabricates synthetic profiles in memory and prints a summary
// table. It never touches the database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"aggregator/internal/aggregation"
	"aggregator/internal/catalog"
	"aggregator/internal/config"
	"aggregator/internal/generator"
	"aggregator/internal/money"
	"aggregator/internal/random"
	"aggregator/internal/report"

	"github.com/olekukonko/tablewriter"
)

func main() {
	cfg := config.Load()
	seed := flag.Int64("seed", cfg.GeneratorSeed, "generator seed, 0 for time based")
	users := flag.Int("users", 5, "number of profiles to generate")
	months := flag.Int("months", cfg.MonthsOfHistory, "months of transaction history")
	statements := flag.String("statements", "", "directory to write per-account xlsx statements into")
	flag.Parse()

	patterns, err := catalog.LoadPatterns(cfg.PatternsFile)
	if err != nil {
		log.Fatalf("failed to load transaction patterns: %v", err)
	}
	rates := aggregation.MetalRates{GoldPerGram: cfg.GoldRatePerGram, SilverPerGram: cfg.SilverRatePerGram}
	seeder := random.NewSeeder(*seed)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "AA Handle", "Accounts", "Transactions", "Investments", "Liabilities", "Net Worth"})
	for i := 0; i < *users; i++ {
		g := generator.New(seeder.Next(), generator.WithPatterns(patterns))
		profile, err := g.Profile(g.User(), generator.ProfileOptions{
			MonthsOfHistory: *months,
			PerMonth:        perMonth(cfg, *months),
		})
		if err != nil {
			log.Fatalf("failed to generate profile: %v", err)
		}
		txns := 0
		for _, account := range profile.Accounts {
			txns += len(account.Transactions)
		}
		worth := aggregation.ComputeNetWorth(profile.Accounts, profile.Investments, profile.Liabilities, profile.User.PreciousMetals, rates)
		table.Append([]string{
			profile.User.Name,
			profile.User.AAHandle,
			strconv.Itoa(len(profile.Accounts)),
			strconv.Itoa(txns),
			strconv.Itoa(len(profile.Investments)),
			strconv.Itoa(len(profile.Liabilities)),
			money.FormatINR(worth.NetWorth),
		})
		if *statements != "" {
			if err := writeStatements(*statements, profile); err != nil {
				log.Fatalf("failed to write statements: %v", err)
			}
		}
	}
	table.Render()
}

// perMonth honors TRANSACTIONS_PER_ACCOUNT against the window chosen on the command line.
func perMonth(cfg config.Config, months int) int {
	cfg.MonthsOfHistory = months
	return cfg.PerMonth()
}

func writeStatements(dir string, profile generator.Profile) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, account := range profile.Accounts {
		data, err := report.StatementXLSX(account)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.xlsx", profile.User.AAHandle, account.ID))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
