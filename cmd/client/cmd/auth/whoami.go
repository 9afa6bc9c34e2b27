// cmd/client/cmd/auth/whoami.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Информация о текущей сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !app.IsAuthenticated() {
			fmt.Println("Вы не вошли в систему. Выполните: pubdeck auth login")
			return nil
		}

		fmt.Println("=== Текущая сессия ===")
		fmt.Println()
		fmt.Printf("Клиент:  %s (ID %d)\n", app.ClientName(), app.ClientID())
		if last := app.LastSync(); !last.IsZero() {
			fmt.Printf("Последняя синхронизация: %s\n", last.Local().Format("2006-01-02 15:04:05"))
		} else {
			fmt.Println("Последняя синхронизация: не выполнялась")
		}
		return nil
	},
}
