package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ats-backend/internal/engine"
	"ats-backend/internal/extract"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume file against a job description",
	Long: `Extracts text from a resume (PDF, DOCX or TXT), parses its sections and
scores it against a job description. Prints the full result as JSON, or a
short human-readable summary with --summary.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeJobText    string
	analyzeSummary    bool
	analyzeNoBonus    bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to the resume file (pdf, docx or txt)")
	analyzeCommand.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to a job description text file")
	analyzeCommand.Flags().StringVar(&analyzeJobText, "job-text", "", "Job description given inline (overrides --job)")
	analyzeCommand.Flags().BoolVar(&analyzeSummary, "summary", false, "Print a short summary instead of full JSON")
	analyzeCommand.Flags().BoolVar(&analyzeNoBonus, "no-bonus", false, "Disable the holistic bonus")
	_ = analyzeCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	resumeText, err := extract.FromBytes(data, analyzeResumePath)
	if err != nil {
		return fmt.Errorf("extract resume text: %w", err)
	}

	jobDescription := analyzeJobText
	if jobDescription == "" && analyzeJobPath != "" {
		jobData, err := os.ReadFile(analyzeJobPath)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		jobDescription = string(jobData)
	}

	analyzer := engine.NewAnalyzer(engine.WithHolisticBonus(!analyzeNoBonus))
	result := analyzer.Analyze(resumeText, jobDescription)

	if analyzeSummary {
		printSummary(cmd, result)
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

func printSummary(cmd *cobra.Command, result engine.Result) {
	cmd.Printf("Score:          %d/100 (%s)\n", result.OverallScore, result.Classification)
	cmd.Printf("Sections:       skills %.0f, contact %.0f, experience %.0f, education %.0f, projects %.0f, format %.0f\n",
		result.SectionScores.Skills,
		result.SectionScores.Contact,
		result.SectionScores.Experience,
		result.SectionScores.Education,
		result.SectionScores.Projects,
		result.SectionScores.Format,
	)
	if len(result.MatchedSkills) > 0 {
		cmd.Printf("Matched skills: %s\n", strings.Join(result.MatchedSkills, ", "))
	}
	if len(result.MissingSkills) > 0 {
		cmd.Printf("Missing skills: %s\n", strings.Join(result.MissingSkills, ", "))
	}
	if result.BonusApplied {
		cmd.Println("Holistic bonus applied.")
	}
	cmd.Println()
	cmd.Println(result.Verdict)
}
