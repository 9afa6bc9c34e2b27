// cmd/client/cmd/delete.go
package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
	"pubdeck/internal/model"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <тип> <id>",
	Short: "Удалить элемент",
	Long: fmt.Sprintf(`Удаляет элемент на сервере и выполняет полную синхронизацию:
удаление затрагивает счетчики использований в других списках.

Допустимые типы: %s.`, strings.Join(model.ItemTypes, ", ")),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		itemType := args[0]
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("некорректный идентификатор: %s", args[1])
		}

		if !deleteForce {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Удалить %s #%d", itemType, id),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Удаление отменено")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		msg, err := app.DeleteItem(ctx, itemType, id)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		if msg == "" {
			msg = "элемент удален"
		}
		client.NotifySuccess("Удалено", msg)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "удалить без подтверждения")
	rootCmd.AddCommand(deleteCmd)
}
