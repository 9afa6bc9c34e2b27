// cmd/client/cmd/text/edit.go
package text

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var EditCmd = &cobra.Command{
	Use:   "edit <id> <текст>",
	Short: "Отредактировать текст",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("некорректный идентификатор: %s", args[0])
		}
		content := strings.Join(args[1:], " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if _, err := app.UpdateText(ctx, id, content); err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Текст обновлен", fmt.Sprintf("текст #%d сохранен", id))
		return nil
	},
}
