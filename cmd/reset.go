package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all logged expenses",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	_, tr, closeFn := openState()
	defer closeFn()

	count := len(tr.Expenses())
	if count == 0 {
		fmt.Println("Nothing to reset.")
		return nil
	}

	if !flagYes {
		fmt.Printf("Delete all %d expenses? [y/N] ", count)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	tr.Replace(nil)
	fmt.Printf("Deleted %d expenses.\n", count)
	return nil
}
