package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sparkfel/schedule1-reverse-search/catalog"
	"github.com/sparkfel/schedule1-reverse-search/search"
)

// NewSearchCommand creates the one-shot search command.
func NewSearchCommand() *cobra.Command {
	var (
		effectsFlag    string
		mode           string
		minDepth       int
		maxDepth       int
		timeoutSeconds int
		allowFlag      string
		replaceOwnBase bool
		showProgress   bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for a recipe producing the given effects",
		Long: `Search explores ingredient sequences breadth-first and prints the best
recipe found. With no --effects, any non-empty recipe qualifies and the
search optimizes purely for cost or profit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cat, err := catalog.Ensure(cfg.Catalog)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			required := splitList(effectsFlag)
			allowed := splitList(allowFlag)

			if maxDepth == 0 {
				maxDepth = cfg.Search.MaxDepth
			}
			if timeoutSeconds == 0 {
				timeoutSeconds = cfg.Search.TimeoutSeconds
				if len(required) >= 4 {
					timeoutSeconds = cfg.Search.LongTimeoutSeconds
				}
			}

			replacement := search.SkipSelfTarget
			if replaceOwnBase {
				replacement = search.ReplaceAlways
			}

			var progress search.ProgressFunc
			if showProgress {
				progress = func(p search.Progress) {
					fmt.Printf("depth %d | states %d | max depth %d | %.1fs elapsed\n",
						p.Depth, p.States, p.MaxDepth, p.Elapsed.Seconds())
				}
			}

			sol, err := search.Search(search.Request{
				RequiredEffects:    required,
				Catalog:            cat,
				Mode:               search.Mode(mode),
				Progress:           progress,
				Timeout:            time.Duration(timeoutSeconds) * time.Second,
				MinDepth:           minDepth,
				MaxDepth:           maxDepth,
				AllowedIngredients: allowed,
				Replacement:        replacement,
			})
			if err != nil {
				return err
			}

			printReport(cat, required, sol)
			return nil
		},
	}

	cmd.Flags().StringVar(&effectsFlag, "effects", "", "Comma-separated required effects (empty: any recipe)")
	cmd.Flags().StringVar(&mode, "mode", "cost", "Optimization mode: cost or profit")
	cmd.Flags().IntVar(&minDepth, "min-depth", 1, "Minimum number of mixing steps")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum number of mixing steps (0: config default)")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Search timeout in seconds (0: config default)")
	cmd.Flags().StringVar(&allowFlag, "allow", "", "Comma-separated ingredient allow-list (empty: all)")
	cmd.Flags().BoolVar(&replaceOwnBase, "replace-own-base", false,
		"Apply replacement rules even to the base effect just added")
	cmd.Flags().BoolVarP(&showProgress, "progress", "p", false, "Print progress while searching")

	return cmd
}

func splitList(flag string) []string {
	if flag == "" {
		return nil
	}
	parts := strings.Split(flag, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// printReport writes the recipe report of the original calculator: steps
// with prices, total cost, final effects, and per-product profits.
func printReport(cat search.Catalog, required []string, sol *search.Solution) {
	if sol == nil {
		fmt.Println("\nCould not find a sequence of items that produces the desired outcome.")
		fmt.Println("Try increasing the maximum mixing step length or check if the desired effects are achievable.")
		return
	}

	fmt.Println("\nTo achieve the following effects:")
	if len(required) > 0 {
		for _, e := range required {
			fmt.Printf("- %s\n", e)
		}
	} else {
		fmt.Println("No specific effects required.")
	}

	fmt.Println("\nUse these items in order:")
	for i, name := range sol.Path {
		fmt.Printf("%d. %s ($%d)\n", i+1, name, cat[name].Price)
	}

	fmt.Printf("\nTotal ingredient cost: $%d\n", sol.Cost)

	fmt.Println("\nThis will give you these final effects:")
	for _, e := range sol.Effects.Sorted() {
		fmt.Printf("- %s (multiplier: %.2f)\n", e, search.EffectMultipliers[e])
	}

	fmt.Println("\nPotential profits with each base product:")
	for _, p := range search.BaseProducts {
		finalPrice := search.FinalPrice(p, sol.Effects)
		fmt.Printf("- %s: $%.2f (profit: $%.2f)\n", p.Name, finalPrice, finalPrice-float64(sol.Cost))
	}
}
