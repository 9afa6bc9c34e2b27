package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var syncStatus bool

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Синхронизация данных",
	Long: `Полная синхронизация с сервером: локальный снимок заменяется
целиком тем, что вернул сервер. Частичных обновлений нет.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if syncStatus {
			return showSyncStatus(app)
		}

		return runSync(cmd.Context(), app)
	},
}

func runSync(ctx context.Context, app *client.App) error {
	fmt.Println("=== Синхронизация данных ===")

	if !app.IsAuthenticated() {
		return fmt.Errorf("требуется аутентификация. Выполните: pubdeck auth login")
	}

	fmt.Println("Загрузка данных с сервера...")
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	data, err := app.SyncAll(ctx)
	if err != nil {
		client.NotifyFromError(err)
		return err
	}

	duration := time.Since(start)

	fmt.Println()
	fmt.Println("✅ Синхронизация завершена!")
	fmt.Printf("Время выполнения: %v\n", duration.Round(time.Millisecond))
	fmt.Printf("Текстов: %d\n", len(data.Texts))
	fmt.Printf("Изображений: %d\n", len(data.Images))
	fmt.Printf("Групп: %d\n", len(data.Groups))
	fmt.Printf("Страниц: %d\n", len(data.Pages))
	fmt.Printf("Запланированных публикаций: %d\n", len(data.ScheduledPosts))
	fmt.Printf("Записей в истории: %d\n", len(data.PublicationLog))

	return nil
}

func showSyncStatus(app *client.App) error {
	fmt.Println("=== Статус синхронизации ===")
	fmt.Println()

	fmt.Printf("🔐 Аутентификация: ")
	if app.IsAuthenticated() {
		fmt.Printf("✅ Выполнена (клиент %s)\n", app.ClientName())
	} else {
		fmt.Printf("❌ Требуется вход\n")
	}

	fmt.Printf("⏰ Последняя синхронизация: ")
	if last := app.LastSync(); !last.IsZero() {
		fmt.Printf("%s\n", last.Local().Format("2006-01-02 15:04:05"))
	} else {
		fmt.Printf("не выполнялась\n")
	}

	texts, images, groups, pages, scheduled := app.Dataset().Counters()
	fmt.Println()
	fmt.Println("📊 Локальный снимок:")
	fmt.Printf("  Текстов: %d\n", texts)
	fmt.Printf("  Изображений: %d\n", images)
	fmt.Printf("  Групп: %d\n", groups)
	fmt.Printf("  Страниц: %d\n", pages)
	fmt.Printf("  Запланировано: %d\n", scheduled)

	return nil
}

func init() {
	SyncCmd.Flags().BoolVar(&syncStatus, "status", false, "показать статус синхронизации")
}
