// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var loginEmail string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему Pubdeck",
	Long: `Аутентификация на сервере Pubdeck.

После входа токен сохраняется локально, сразу выполняется полная
синхронизация данных. Сбой первичной синхронизации завершает сессию:
клиент не работает с непроверенным снимком.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		// Запрашиваем email, если не передан флагом
		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			_, _ = fmt.Scanln(&email)
		}

		// Запрашиваем пароль
		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Аутентификация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.Login(ctx, email, string(password))
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		fmt.Println()
		fmt.Printf("✅ Вход выполнен успешно! Клиент: %s\n", result.ClientName)

		// Первичная синхронизация — обязательная часть входа
		fmt.Println("Синхронизация данных...")
		data, err := app.SyncAll(ctx)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		fmt.Println("✓ Данные синхронизированы")
		fmt.Println()
		fmt.Print(client.RenderSummary(data, app.ClientName(), app.Dataset().Connected(), app.Dataset().Publishing()))

		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "email для входа")
}
