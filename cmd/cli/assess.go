package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/turtacn/mfo-shield/internal/domain/models"
	domainservice "github.com/turtacn/mfo-shield/internal/domain/service"
)

// assessCmd computes one weighted risk score locally.
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Compute a weighted risk score from factor values",
	Long: `Computes the weighted risk score locally, without calling the HTTP
service, and prints the rounded score together with its risk level.`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().Float64("overdue-payments", 0, "Overdue payments factor")
	assessCmd.Flags().Float64("loan-defaults", 0, "Loan defaults factor")
	assessCmd.Flags().Float64("compliance-violations", 0, "Compliance violations factor")
	assessCmd.Flags().Float64("regulatory-flags", 0, "Regulatory flags factor")
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	overdue, _ := cmd.Flags().GetFloat64("overdue-payments")
	defaults, _ := cmd.Flags().GetFloat64("loan-defaults")
	violations, _ := cmd.Flags().GetFloat64("compliance-violations")
	flags, _ := cmd.Flags().GetFloat64("regulatory-flags")

	calculator := domainservice.NewRiskCalculatorService()
	score := calculator.CalculateScore(models.RiskFactors{
		"overdue_payments":      overdue,
		"loan_defaults":         defaults,
		"compliance_violations": violations,
		"regulatory_flags":      flags,
	})
	level := calculator.LevelForScore(score)

	fmt.Printf("risk_score: %.2f\nrisk_level: %s\n", math.Round(score*100)/100, level)
	return nil
}
