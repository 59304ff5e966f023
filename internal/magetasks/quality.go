package magetasks

import "fmt"

// QualityCheck runs lint, tests, build and the conformance checks.
func QualityCheck() error {
	PrintH1Header("pco Quality Assurance")

	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestAll(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := Headers(); err != nil {
		return err
	}

	PrintSuccess("Quality checks complete")
	return nil
}
