// cmd/client/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long: `Завершает сессию: удаляет токен, очищает идентификацию клиента
и локальный снимок данных. Тема оформления сохраняется.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !app.IsAuthenticated() {
			fmt.Println("Вы не вошли в систему")
			return nil
		}

		app.Logout()
		fmt.Println("✅ Выход выполнен")
		return nil
	},
}
