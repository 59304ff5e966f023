package magetasks

import "fmt"

// Headers builds pco and runs every pre-commit check on this repository.
func Headers() error {
	if err := BuildAll(); err != nil {
		return err
	}
	PrintH2Header("Pre-commit Checks")

	if err := Run("pco all", BinPath, HeadersArgs()...); err != nil {
		PrintError("Conformance checks failed")
		return fmt.Errorf("headers: %w", err)
	}

	PrintSuccess("All files conform")
	return nil
}

// HeadersArgs are the arguments the Headers task passes to pco.
func HeadersArgs() []string {
	return []string{"all", "--root", ProjectRoot, "--format", "llm"}
}
