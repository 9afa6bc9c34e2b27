// cmd/client/cmd/theme.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var themeCmd = &cobra.Command{
	Use:   "theme [название]",
	Short: "Показать или сменить тему оформления",
	Long: `Без аргумента показывает текущую тему. С аргументом сохраняет новую.
Тема хранится локально и переживает выход из системы.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if len(args) == 0 {
			fmt.Printf("Текущая тема: %s\n", app.Theme())
			return nil
		}

		if err := app.SetTheme(args[0]); err != nil {
			return fmt.Errorf("ошибка сохранения темы: %w", err)
		}

		client.NotifySuccess("Тема", fmt.Sprintf("установлена тема %q", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
