package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the class labels the backend predicts",
	RunE:  runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)
}

func runClasses(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := newAPIClient(cfg)

	classes, err := client.Classes()
	if err != nil {
		return fmt.Errorf("failed to get classes: %w", err)
	}

	if jsonOut {
		data, err := json.Marshal(classes)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, class := range classes {
		fmt.Println(class)
	}

	return nil
}
